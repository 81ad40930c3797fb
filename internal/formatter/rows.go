package formatter

import (
	"fmt"
	"sort"

	"github.com/oakwood-commons/navx/internal/traverse"
)

// ScalarValueKey is the key column label used when a node renders as a
// single scalar row.
const ScalarValueKey = "(value)"

// SortOrder defines how map keys are ordered when rendered.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ArrayStyle constants control how array indices are displayed.
const (
	ArrayStyleIndex    = "index"    // [0], [1], [2] (default)
	ArrayStyleNumbered = "numbered" // 1, 2, 3 (1-based)
	ArrayStyleBullet   = "bullet"   // •
	ArrayStyleNone     = "none"     // no index column
)

// RowOptions configures how rows are generated from nodes.
type RowOptions struct {
	// SortOrder controls map key ordering.
	SortOrder SortOrder
	// ArrayStyle controls how array indices are displayed. See the
	// ArrayStyle* constants.
	ArrayStyle string
}

// DefaultRowOptions returns the default row generation options.
func DefaultRowOptions() RowOptions {
	return RowOptions{
		SortOrder:  SortAscending,
		ArrayStyle: ArrayStyleIndex,
	}
}

// NodeToRows converts a node into [key, value] row pairs for table
// display using the default options.
func NodeToRows(node interface{}) [][]string {
	return NodeToRowsWithOptions(node, DefaultRowOptions())
}

// NodeToRowsWithOptions converts a node into [key, value] row pairs.
// Maps produce one row per key; sequences one row per element; anything
// else renders as a single scalar row.
func NodeToRowsWithOptions(node interface{}, opts RowOptions) [][]string {
	var rows [][]string

	if m, ok := asStringMap(node); ok {
		// Empty maps render as scalar values.
		if len(m) == 0 {
			return append(rows, []string{ScalarValueKey, Stringify(node)})
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		switch opts.SortOrder {
		case SortAscending:
			sort.Strings(keys)
		case SortDescending:
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		case SortNone:
			// Preserve natural order where possible (map iteration may be random).
		}
		for _, k := range keys {
			rows = append(rows, []string{k, Stringify(m[k])})
		}
		return rows
	}

	if elems, ok := traverse.Elements(node); ok {
		if len(elems) == 0 {
			return append(rows, []string{ScalarValueKey, Stringify(node)})
		}
		for i, v := range elems {
			rows = append(rows, []string{formatArrayIndex(i, opts.ArrayStyle), Stringify(v)})
		}
		return rows
	}

	return append(rows, []string{ScalarValueKey, Stringify(node)})
}

// asStringMap normalizes string-keyed maps (typed or not) into a
// map[string]interface{} view for row conversion.
func asStringMap(node interface{}) (map[string]interface{}, bool) {
	if m, ok := node.(map[string]interface{}); ok {
		return m, true
	}
	keys := traverse.MapKeys(node)
	if keys == nil {
		return nil, false
	}
	m := make(map[string]interface{}, len(keys))
	for _, k := range keys {
		if v, ok := traverse.Lookup(node, k); ok {
			m[k] = v
		}
	}
	return m, true
}

func formatArrayIndex(index int, style string) string {
	switch style {
	case ArrayStyleNumbered:
		return fmt.Sprintf("%d", index+1)
	case ArrayStyleBullet:
		return "•"
	case ArrayStyleNone:
		return ""
	default: // ArrayStyleIndex
		return fmt.Sprintf("[%d]", index)
	}
}
