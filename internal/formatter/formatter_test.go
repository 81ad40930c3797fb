package formatter

import (
	"strings"
	"testing"
)

func TestStringifyScalars(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "hello", want: "hello"},
		{name: "multiline string", in: "a\nb", want: "a\\nb"},
		{name: "windows newlines", in: "a\r\nb", want: "a\\nb"},
		{name: "int", in: 42, want: "42"},
		{name: "float", in: 1.5, want: "1.5"},
		{name: "bool", in: true, want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Fatalf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringifyContainersAsJSON(t *testing.T) {
	if got := Stringify(map[string]interface{}{"a": 1}); got != `{"a":1}` {
		t.Fatalf("expected compact JSON map, got %q", got)
	}
	if got := Stringify([]interface{}{1, "x"}); got != `[1,"x"]` {
		t.Fatalf("expected compact JSON array, got %q", got)
	}
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	if got := Stringify(point{X: 1, Y: 2}); got != `{"x":1,"y":2}` {
		t.Fatalf("expected struct JSON, got %q", got)
	}
	if got := Stringify([]string{"a", "b"}); got != `["a","b"]` {
		t.Fatalf("expected typed slice JSON, got %q", got)
	}
}

func TestNodeToRowsMapSorted(t *testing.T) {
	node := map[string]interface{}{"b": 2, "a": 1, "c": 3}
	rows := NodeToRows(node)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "a" || rows[1][0] != "b" || rows[2][0] != "c" {
		t.Fatalf("expected ascending key order, got %v", rows)
	}
}

func TestNodeToRowsMapDescending(t *testing.T) {
	opts := DefaultRowOptions()
	opts.SortOrder = SortDescending
	rows := NodeToRowsWithOptions(map[string]interface{}{"a": 1, "b": 2}, opts)
	if rows[0][0] != "b" || rows[1][0] != "a" {
		t.Fatalf("expected descending key order, got %v", rows)
	}
}

func TestNodeToRowsArrayStyles(t *testing.T) {
	node := []interface{}{"x", "y"}

	rows := NodeToRows(node)
	if rows[0][0] != "[0]" || rows[1][0] != "[1]" {
		t.Fatalf("expected bracket indices, got %v", rows)
	}

	opts := DefaultRowOptions()
	opts.ArrayStyle = ArrayStyleNumbered
	rows = NodeToRowsWithOptions(node, opts)
	if rows[0][0] != "1" || rows[1][0] != "2" {
		t.Fatalf("expected 1-based indices, got %v", rows)
	}

	opts.ArrayStyle = ArrayStyleBullet
	rows = NodeToRowsWithOptions(node, opts)
	if rows[0][0] != "•" {
		t.Fatalf("expected bullet index, got %v", rows)
	}
}

func TestNodeToRowsScalar(t *testing.T) {
	rows := NodeToRows("plain")
	if len(rows) != 1 || rows[0][0] != ScalarValueKey || rows[0][1] != "plain" {
		t.Fatalf("expected single scalar row, got %v", rows)
	}
}

func TestNodeToRowsEmptyContainersAreScalar(t *testing.T) {
	rows := NodeToRows(map[string]interface{}{})
	if len(rows) != 1 || rows[0][0] != ScalarValueKey {
		t.Fatalf("expected scalar row for empty map, got %v", rows)
	}
	rows = NodeToRows([]interface{}{})
	if len(rows) != 1 || rows[0][0] != ScalarValueKey {
		t.Fatalf("expected scalar row for empty array, got %v", rows)
	}
}

func TestNodeToRowsTypedMap(t *testing.T) {
	rows := NodeToRows(map[string]int{"k": 7})
	if len(rows) != 1 || rows[0][0] != "k" || rows[0][1] != "7" {
		t.Fatalf("expected typed map row, got %v", rows)
	}
}

func TestRenderTablePlain(t *testing.T) {
	rows := [][]string{{"name", "alice"}, {"age", "30"}}
	out := RenderTable(rows, true, 0)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator, and 2 rows; got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "KEY") || !strings.Contains(lines[0], "VALUE") {
		t.Fatalf("expected KEY/VALUE header, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "name") || !strings.Contains(lines[2], "alice") {
		t.Fatalf("expected first data row, got %q", lines[2])
	}
}

func TestRenderTableTruncates(t *testing.T) {
	rows := [][]string{{"key", strings.Repeat("v", 200)}}
	out := RenderTable(rows, true, 40)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len([]rune(line)) > 40 {
			t.Fatalf("expected lines capped at 40 columns, got %d: %q", len([]rune(line)), line)
		}
	}
	if !strings.Contains(out, "...") {
		t.Fatal("expected truncation ellipsis in output")
	}
}
