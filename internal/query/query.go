// Package query implements the array search operations: first-match,
// filter, index-of, and length. Outcomes are modeled as a tagged Result so
// callers can tell "no element matched" apart from "the input was not a
// sequence at all"; the public API flattens this distinction at its
// boundary.
package query

import (
	"github.com/oakwood-commons/navx/internal/compare"
	"github.com/oakwood-commons/navx/internal/traverse"
)

// Kind classifies the outcome of a query operation.
type Kind int

const (
	// Found means an element (or index) matched the predicate.
	Found Kind = iota
	// NoMatch means the input was a valid sequence but nothing matched.
	NoMatch
	// NotAnArray means the input was not an ordered sequence.
	NotAnArray
)

// Result is the outcome of a query operation.
type Result struct {
	Kind  Kind
	Value interface{}
	Index int
}

// Accessor extracts the comparison operand from a sequence element.
type Accessor func(elem interface{}) (interface{}, bool)

// KeyAccessor returns an Accessor that reads the property named key from
// each element, using the same lookup rules as path traversal.
func KeyAccessor(key string) Accessor {
	return func(elem interface{}) (interface{}, bool) {
		return traverse.Lookup(elem, key)
	}
}

// SelfAccessor returns each element itself, for sequences of primitives.
func SelfAccessor() Accessor {
	return func(elem interface{}) (interface{}, bool) {
		return elem, true
	}
}

// Find returns the first element whose accessed operand satisfies
// Compare(operand, match, op), scanning in order.
func Find(cur interface{}, get Accessor, match interface{}, op compare.Operator) Result {
	elems, ok := traverse.Elements(cur)
	if !ok {
		return Result{Kind: NotAnArray, Index: -1}
	}
	for i, elem := range elems {
		operand, ok := get(elem)
		if !ok {
			continue
		}
		if compare.Compare(operand, match, op) {
			return Result{Kind: Found, Value: elem, Index: i}
		}
	}
	return Result{Kind: NoMatch, Index: -1}
}

// Filter returns every element whose accessed operand satisfies the
// predicate, preserving original relative order. A present sequence with
// no matches yields Found with an empty slice, never NoMatch.
func Filter(cur interface{}, get Accessor, match interface{}, op compare.Operator) Result {
	elems, ok := traverse.Elements(cur)
	if !ok {
		return Result{Kind: NotAnArray, Index: -1}
	}
	matched := make([]interface{}, 0, len(elems))
	for _, elem := range elems {
		operand, ok := get(elem)
		if !ok {
			continue
		}
		if compare.Compare(operand, match, op) {
			matched = append(matched, elem)
		}
	}
	return Result{Kind: Found, Value: matched}
}

// IndexOf returns the zero-based position of the first matching element.
// A valid sequence with no match reports NoMatch with Index -1.
func IndexOf(cur interface{}, get Accessor, match interface{}, op compare.Operator) Result {
	res := Find(cur, get, match, op)
	if res.Kind == Found {
		return Result{Kind: Found, Value: res.Value, Index: res.Index}
	}
	return res
}

// Length returns the element count of cur, or NotAnArray when cur is not
// an ordered sequence.
func Length(cur interface{}) Result {
	elems, ok := traverse.Elements(cur)
	if !ok {
		return Result{Kind: NotAnArray, Index: -1}
	}
	return Result{Kind: Found, Index: len(elems)}
}
