// Package navigator provides a fluent accessor for traversing deeply
// nested data structures with dot-delimited paths, plus comparison-driven
// array search helpers.
//
// Every operation returns a new Navigator wrapping the derived value, so
// calls chain without mutating earlier Navigators:
//
//	age := navigator.New(doc).
//		NavigateTo("users").
//		Find("name", "alice").
//		NavigateTo("age").
//		Value()
//
// Navigation never fails: a path that does not resolve produces the
// Absent sentinel, retrievable (and testable via IsAbsent) at the end of
// the chain.
package navigator

import (
	"github.com/oakwood-commons/navx/internal/compare"
	"github.com/oakwood-commons/navx/internal/query"
	"github.com/oakwood-commons/navx/internal/traverse"
)

// Operator identifies a comparison operation used by the query helpers.
type Operator = compare.Operator

// The closed set of comparison operations. Query helpers default to
// OpEquals when no operator is supplied; anything outside this set makes
// every comparison evaluate to false.
const (
	OpEquals             = compare.OpEquals
	OpNotEquals          = compare.OpNotEquals
	OpGreaterThan        = compare.OpGreaterThan
	OpLessThan           = compare.OpLessThan
	OpGreaterThanOrEqual = compare.OpGreaterThanOrEqual
	OpLessThanOrEqual    = compare.OpLessThanOrEqual
)

// Getter is implemented by values that resolve their own property
// lookups during traversal and element access.
type Getter = traverse.Getter

// Accessor extracts the comparison operand from a sequence element. It is
// the function-valued alternative to addressing elements by key name.
type Accessor = query.Accessor

// AbsentMarker is the sentinel type denoting "no value here". It is
// distinct from a present nil: a path ending in an explicit null yields
// nil from Value, while a path that failed to resolve yields Absent.
type AbsentMarker struct{}

func (AbsentMarker) String() string { return "(absent)" }

// Absent is the sentinel returned by Value when navigation failed.
var Absent = AbsentMarker{}

// IsAbsent reports whether v is the absent sentinel.
func IsAbsent(v interface{}) bool {
	_, ok := v.(AbsentMarker)
	return ok
}

// Navigator wraps a current value derived from a root by prior
// navigation. Navigators are immutable; operations derive new ones.
type Navigator struct {
	root    interface{}
	current interface{}
}

// New creates a Navigator around root, which acts as its own current
// value initially.
func New(root interface{}) *Navigator {
	return &Navigator{root: root, current: root}
}

// Root returns the original root value the chain started from.
func (n *Navigator) Root() interface{} {
	return n.root
}

// Value returns the raw current value, including the Absent sentinel if
// navigation failed at any point. It performs no validation and never
// fails.
func (n *Navigator) Value() interface{} {
	return n.current
}

// NavigateTo descends through the current value one dot-delimited path
// segment at a time and returns a Navigator wrapping the result. An
// all-digit segment indexes the current sequence; any segment that fails
// to resolve makes the whole result Absent. The empty path addresses the
// "" key.
func (n *Navigator) NavigateTo(path string) *Navigator {
	if IsAbsent(n.current) {
		return n.derive(Absent)
	}
	value, ok := Resolve(n.current, path)
	if !ok {
		return n.derive(Absent)
	}
	return n.derive(value)
}

// Find returns a Navigator wrapping the first element of the current
// sequence whose property key satisfies the comparison against match.
// No match, or a current value that is not a sequence, yields Absent.
func (n *Navigator) Find(key string, match interface{}, op ...Operator) *Navigator {
	return n.FindBy(query.KeyAccessor(key), match, op...)
}

// FindBy is Find with a caller-supplied accessor instead of a key name.
func (n *Navigator) FindBy(get Accessor, match interface{}, op ...Operator) *Navigator {
	res := query.Find(n.current, get, match, pickOperator(op))
	if res.Kind != query.Found {
		return n.derive(Absent)
	}
	return n.derive(res.Value)
}

// Filter returns a Navigator wrapping a new sequence of every element
// whose property key satisfies the comparison, in original order. A
// present sequence with no matches yields an empty sequence; a current
// value that is not a sequence yields Absent.
func (n *Navigator) Filter(key string, match interface{}, op ...Operator) *Navigator {
	return n.FilterBy(query.KeyAccessor(key), match, op...)
}

// FilterBy is Filter with a caller-supplied accessor instead of a key
// name.
func (n *Navigator) FilterBy(get Accessor, match interface{}, op ...Operator) *Navigator {
	res := query.Filter(n.current, get, match, pickOperator(op))
	if res.Kind != query.Found {
		return n.derive(Absent)
	}
	return n.derive(res.Value)
}

// GetIndex returns the zero-based position of the first matching element
// of the current sequence. It is dual-mode:
//
//   - GetIndex(value) or GetIndex(value, op) compares each element
//     itself against value (sequences of primitives);
//   - GetIndex(key, match) or GetIndex(key, match, op) compares each
//     element's property named key against match (sequences of records).
//
// A two-argument call selects primitive mode only when the second
// argument is a typed Operator; use the three-argument form when a record
// match value could be mistaken for an operator name.
//
// The comma-ok result is false only when the current value is not a
// sequence. A valid sequence with no match returns (-1, true), a
// distinct, present outcome.
func (n *Navigator) GetIndex(keyOrValue interface{}, args ...interface{}) (int, bool) {
	get, match, op := splitIndexArgs(keyOrValue, args)
	return n.GetIndexBy(get, match, op...)
}

// GetIndexBy is GetIndex with a caller-supplied accessor; the comparison
// operand of each element is whatever get returns.
func (n *Navigator) GetIndexBy(get Accessor, match interface{}, op ...Operator) (int, bool) {
	res := query.IndexOf(n.current, get, match, pickOperator(op))
	if res.Kind == query.NotAnArray {
		return 0, false
	}
	return res.Index, true
}

// GetLength returns the element count of the current sequence. The
// comma-ok result is false when the current value is not a sequence.
func (n *Navigator) GetLength() (int, bool) {
	res := query.Length(n.current)
	if res.Kind == query.NotAnArray {
		return 0, false
	}
	return res.Index, true
}

func (n *Navigator) derive(current interface{}) *Navigator {
	return &Navigator{root: n.root, current: current}
}

func pickOperator(ops []Operator) Operator {
	if len(ops) == 0 {
		return OpEquals
	}
	return ops[0]
}

// splitIndexArgs resolves the dual-mode GetIndex argument forms into an
// accessor, match value, and optional operator.
func splitIndexArgs(keyOrValue interface{}, args []interface{}) (Accessor, interface{}, []Operator) {
	switch len(args) {
	case 0:
		return query.SelfAccessor(), keyOrValue, nil
	case 1:
		if op, ok := args[0].(Operator); ok {
			return query.SelfAccessor(), keyOrValue, []Operator{op}
		}
		return keyedAccessor(keyOrValue), args[0], nil
	default:
		return keyedAccessor(keyOrValue), args[0], []Operator{toOperator(args[1])}
	}
}

func keyedAccessor(keyOrValue interface{}) Accessor {
	if key, ok := keyOrValue.(string); ok {
		return query.KeyAccessor(key)
	}
	// A non-string key cannot address record properties; nothing matches.
	return func(interface{}) (interface{}, bool) {
		return nil, false
	}
}

func toOperator(v interface{}) Operator {
	switch t := v.(type) {
	case Operator:
		return t
	case string:
		return Operator(t)
	default:
		// Unknown operator values compare to false for every element.
		return Operator("")
	}
}
