// Package compare implements the comparison operations used by the array
// query helpers. Comparisons are pure functions over arbitrary values: an
// unknown operator or an ordering comparison against a non-numeric operand
// evaluates to false rather than failing.
package compare

import "reflect"

// Operator identifies one of the supported comparison operations.
type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "not_equals"
	OpGreaterThan        Operator = "greater_than"
	OpLessThan           Operator = "less_than"
	OpGreaterThanOrEqual Operator = "greater_than_or_equal"
	OpLessThanOrEqual    Operator = "less_than_or_equal"
)

var supportedOperatorSet = map[Operator]struct{}{
	OpEquals:             {},
	OpNotEquals:          {},
	OpGreaterThan:        {},
	OpLessThan:           {},
	OpGreaterThanOrEqual: {},
	OpLessThanOrEqual:    {},
}

// IsSupported reports whether op is a member of the closed operator set.
func IsSupported(op Operator) bool {
	_, ok := supportedOperatorSet[op]
	return ok
}

// Compare evaluates a single comparison between left and right.
//
// Equality is strict on value and type, with one carve-out: numeric values
// of different widths compare by numeric value, so int(1) equals
// float64(1) but never the string "1". The four ordering operators are
// defined only when both operands are numeric; any other pairing yields
// false. Operators outside the supported set also yield false.
func Compare(left, right interface{}, op Operator) bool {
	switch op {
	case OpEquals:
		return equalValues(left, right)
	case OpNotEquals:
		return !equalValues(left, right)
	case OpGreaterThan:
		return orderedCompare(left, right, func(a, b float64) bool { return a > b })
	case OpLessThan:
		return orderedCompare(left, right, func(a, b float64) bool { return a < b })
	case OpGreaterThanOrEqual:
		return orderedCompare(left, right, func(a, b float64) bool { return a >= b })
	case OpLessThanOrEqual:
		return orderedCompare(left, right, func(a, b float64) bool { return a <= b })
	default:
		return false
	}
}

func equalValues(left, right interface{}) bool {
	if reflect.DeepEqual(left, right) {
		return true
	}

	leftNumber, leftIsNumber := ToFloat64(left)
	rightNumber, rightIsNumber := ToFloat64(right)
	if leftIsNumber && rightIsNumber {
		return leftNumber == rightNumber
	}

	return false
}

func orderedCompare(left, right interface{}, cmp func(float64, float64) bool) bool {
	leftNumber, leftIsNumber := ToFloat64(left)
	rightNumber, rightIsNumber := ToFloat64(right)
	if !leftIsNumber || !rightIsNumber {
		return false
	}
	return cmp(leftNumber, rightNumber)
}
