// Package formatter renders navigation results for terminal output: a
// compact Stringify for scalar display and a two-column KEY/VALUE table.
package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Background(lipgloss.Color("236"))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Stringify returns a compact single-line representation for an
// arbitrary node. Maps, slices, and structs render as compact JSON;
// strings have control characters escaped so table rows stay single-line.
func Stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return escapeScalarString(t)
	case bool, int, int64, float64:
		return fmt.Sprint(t)
	case map[string]interface{}, []interface{}:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	default:
		// Reflection covers typed maps, slices, and structs so embedded
		// callers passing native Go types get JSON output instead of
		// fmt's "map[key:value]" form.
		rv := reflect.ValueOf(v)
		switch rv.Kind() { //nolint:exhaustive // only complex types need JSON marshaling
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		case reflect.Ptr:
			if !rv.IsNil() {
				elem := rv.Elem()
				if elem.Kind() == reflect.Struct || elem.Kind() == reflect.Map || elem.Kind() == reflect.Slice {
					if b, err := json.Marshal(v); err == nil {
						return string(b)
					}
				}
			}
		}
		return fmt.Sprintf("%v", v)
	}
}

// escapeScalarString flattens control characters so table rows stay
// single-line.
func escapeScalarString(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "\\n")
}

// RenderTable renders rows as a two-column KEY/VALUE table. maxWidth
// limits the total table width; 0 means no truncation.
func RenderTable(rows [][]string, noColor bool, maxWidth int) string {
	sepWidth := 2
	sep := strings.Repeat(" ", sepWidth)

	keyWidth := 3   // "KEY" header
	valueWidth := 5 // "VALUE" header
	for _, row := range rows {
		if len(row) > 0 {
			if w := runewidth.StringWidth(row[0]); w > keyWidth {
				keyWidth = w
			}
		}
		if len(row) > 1 {
			if w := runewidth.StringWidth(row[1]); w > valueWidth {
				valueWidth = w
			}
		}
	}

	if maxWidth > 0 && keyWidth+sepWidth+valueWidth > maxWidth {
		available := maxWidth - sepWidth
		if available < 10 {
			available = 10
		}
		// Key column gets at most 30% of the available width.
		maxKeyAlloc := available * 30 / 100
		if maxKeyAlloc < 5 {
			maxKeyAlloc = 5
		}
		if keyWidth > maxKeyAlloc {
			keyWidth = maxKeyAlloc
		}
		valueWidth = available - keyWidth
		if valueWidth < 5 {
			valueWidth = 5
		}
	}

	var b strings.Builder

	headerKey := padRight("KEY", keyWidth)
	headerValue := padRight("VALUE", valueWidth)
	if !noColor {
		headerKey = headerStyle.Render(headerKey)
		headerValue = headerStyle.Render(headerValue)
	}
	b.WriteString(headerKey + sep + headerValue + "\n")

	separator := strings.Repeat("─", keyWidth+sepWidth+valueWidth)
	if !noColor {
		separator = separatorStyle.Render(separator)
	}
	b.WriteString(separator + "\n")

	for _, row := range rows {
		key := ""
		val := ""
		if len(row) > 0 {
			key = row[0]
		}
		if len(row) > 1 {
			val = row[1]
		}
		keyStr := padRight(truncate(key, keyWidth), keyWidth)
		valStr := padRight(truncate(val, valueWidth), valueWidth)
		if !noColor {
			keyStr = keyStyle.Render(keyStr)
			valStr = valueStyle.Render(valStr)
		}
		b.WriteString(keyStr + sep + valStr + "\n")
	}

	return b.String()
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
