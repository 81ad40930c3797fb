// Package loader parses structured input into plain Go values suitable
// for navigation: map[string]interface{}, []interface{}, and scalars.
// The input format is auto-detected.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names reported to loggers and returned by DetectFormat.
const (
	FormatJSON      = "json"
	FormatNDJSON    = "ndjson"
	FormatYAML      = "yaml"
	FormatMultiYAML = "multi-yaml"
	FormatTOML      = "toml"
)

// LoadRoot parses input into a single root node, auto-detecting the
// format. Supported formats:
//   - single JSON object/array
//   - newline-delimited JSON (one JSON value per line)
//   - YAML, single or multi-document (separated by ---)
//   - TOML
//
// Multi-document inputs are returned as a []interface{} of documents.
func LoadRoot(input string) (interface{}, error) {
	return LoadRootWithLogger(input, logr.Discard())
}

// LoadRootWithLogger is LoadRoot with a logger that records which format
// the detection heuristics settled on.
func LoadRootWithLogger(input string, lgr logr.Logger) (interface{}, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	format := DetectFormat(input)
	lgr.V(1).Info("detected input format", "format", format)

	docs, err := parseAs(format, input)
	if err != nil {
		return nil, err
	}
	if len(docs) == 1 {
		return docs[0], nil
	}
	return docs, nil
}

// LoadRootBytes parses input bytes into a single root node.
func LoadRootBytes(data []byte) (interface{}, error) {
	return LoadRoot(string(data))
}

// LoadFile reads a file and parses it into a single root node.
func LoadFile(path string) (interface{}, error) {
	return LoadFileWithLogger(path, logr.Discard())
}

// LoadFileWithLogger is LoadFile with a logger for recording format
// detection.
func LoadFileWithLogger(path string, lgr logr.Logger) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return LoadRootWithLogger(string(data), lgr)
}

// LoadObject accepts an already parsed value and returns it ready for
// navigation. Strings and byte slices are parsed with format detection;
// everything else (maps, slices, structs) navigates as-is.
func LoadObject(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("object input is nil")
	case string:
		return LoadRoot(v)
	case []byte:
		return LoadRootBytes(v)
	default:
		return value, nil
	}
}

// DetectFormat classifies input as one of the Format constants using the
// same ordering as LoadRoot: multi-document YAML first (most
// restrictive), then NDJSON, TOML, JSON, and finally plain YAML.
func DetectFormat(input string) string {
	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return FormatMultiYAML
	}
	if lines := strings.Split(input, "\n"); len(lines) > 1 && isLikelyNDJSON(lines) {
		return FormatNDJSON
	}
	// TOML before JSON: a [section] header would otherwise read as a
	// JSON array prefix.
	if isLikelyTOML(input) {
		return FormatTOML
	}
	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return FormatJSON
	}
	return FormatYAML
}

func parseAs(format, input string) ([]interface{}, error) {
	switch format {
	case FormatMultiYAML:
		return parseMultiDocYAML(input)
	case FormatNDJSON:
		return parseNDJSON(input)
	case FormatTOML:
		return parseTOML(input)
	case FormatJSON:
		return parseJSON(input)
	default:
		return parseYAML(input)
	}
}

func parseJSON(input string) ([]interface{}, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []interface{}{data}, nil
}

func parseYAML(input string) ([]interface{}, error) {
	var data interface{}
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return []interface{}{data}, nil
}

func parseMultiDocYAML(input string) ([]interface{}, error) {
	var results []interface{}
	decoder := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc interface{}
		if err := decoder.Decode(&doc); err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		if doc != nil {
			results = append(results, doc)
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no documents found in multi-document YAML")
	}
	return results, nil
}

// parseNDJSON parses newline-delimited JSON. Lines that fail to parse as
// JSON are kept as plain strings.
func parseNDJSON(input string) ([]interface{}, error) {
	lines := strings.Split(input, "\n")
	results := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			results = append(results, line)
			continue
		}
		results = append(results, obj)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no data found in input")
	}
	return results, nil
}

func parseTOML(input string) ([]interface{}, error) {
	var data interface{}
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []interface{}{data}, nil
}

// isLikelyNDJSON requires multiple lines with a majority starting like a
// JSON object or array, so bare-list YAML is not misclassified.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	return nonEmptyCount > 1 && jsonCount > nonEmptyCount/2
}

var (
	// Matches [section], [[array]], [a.b], ["quoted name"], but not [1, 2, 3].
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// key = value (not YAML's key: value), including quoted and dotted keys.
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
