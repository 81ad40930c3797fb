package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRootJSON(t *testing.T) {
	got, err := LoadRoot(`{"name": "test", "value": 42}`)
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok, "expected map root, got %T", got)
	assert.Equal(t, "test", m["name"])

	got, err = LoadRoot(`[1, 2, 3]`)
	require.NoError(t, err)
	arr, ok := got.([]interface{})
	require.True(t, ok, "expected array root, got %T", got)
	assert.Len(t, arr, 3)
}

func TestLoadRootYAML(t *testing.T) {
	got, err := LoadRoot("person:\n  name: Alice\n  age: 30\n")
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	person, ok := m["person"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", person["name"])
	assert.Equal(t, 30, person["age"])
}

func TestLoadRootMultiDocYAML(t *testing.T) {
	got, err := LoadRoot("---\nname: a\n---\nname: b\n")
	require.NoError(t, err)
	docs, ok := got.([]interface{})
	require.True(t, ok, "expected slice of documents, got %T", got)
	require.Len(t, docs, 2)
}

func TestLoadRootNDJSON(t *testing.T) {
	input := `{"id": 1}
{"id": 2}
{"id": 3}`
	got, err := LoadRoot(input)
	require.NoError(t, err)
	docs, ok := got.([]interface{})
	require.True(t, ok)
	require.Len(t, docs, 3)
	first, ok := docs[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
}

func TestLoadRootTOML(t *testing.T) {
	input := `[server]
host = "localhost"
port = 8080`
	got, err := LoadRoot(input)
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	server, ok := m["server"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "localhost", server["host"])
}

func TestLoadRootEmptyInput(t *testing.T) {
	_, err := LoadRoot("")
	require.Error(t, err)
	_, err = LoadRoot("   \n  ")
	require.Error(t, err)
}

func TestLoadRootInvalidJSONFallsBackToYAML(t *testing.T) {
	got, err := LoadRoot(`{invalid}`)
	require.NoError(t, err)
	// YAML parses {invalid} as a flow mapping with a nil value.
	assert.Equal(t, map[string]interface{}{"invalid": nil}, got)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "json object", input: `{"a": 1}`, want: FormatJSON},
		{name: "json array", input: `[1, 2]`, want: FormatJSON},
		{name: "yaml", input: "a: 1\nb: 2", want: FormatYAML},
		{name: "multi-doc yaml", input: "---\na: 1\n---\nb: 2", want: FormatMultiYAML},
		{name: "ndjson", input: "{\"a\": 1}\n{\"b\": 2}", want: FormatNDJSON},
		{name: "toml section", input: "[server]\nhost = \"x\"", want: FormatTOML},
		{name: "toml key values", input: "host = \"x\"\nport = 1", want: FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.input))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "from-file", m["name"])

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoadObject(t *testing.T) {
	_, err := LoadObject(nil)
	require.Error(t, err)

	got, err := LoadObject(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, got)

	type thing struct{ Name string }
	v := thing{Name: "x"}
	got, err = LoadObject(v)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
