// Package traverse implements segment-by-segment descent through nested
// data structures. Missing keys, out-of-range indices, and attempts to
// descend into scalars all resolve to "absent" (comma-ok false); descent
// never returns an error.
package traverse

import (
	"reflect"
	"strconv"
	"strings"
)

// Getter is implemented by values that resolve their own property lookups.
// It takes precedence over map, struct, and reflection-based access.
type Getter interface {
	Get(key string) (interface{}, bool)
}

// Split splits a dot-delimited path into segments. The empty path is a
// single empty-string segment, addressing the "" key.
func Split(path string) []string {
	return strings.Split(path, ".")
}

// Walk descends through root one segment at a time and returns the value
// at the end of the path. The second return is false when any segment
// failed to resolve; remaining segments are skipped once that happens.
func Walk(root interface{}, segments []string) (interface{}, bool) {
	cur := root
	for _, segment := range segments {
		next, ok := Step(cur, segment)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Step resolves a single path segment against cur. An all-digit segment
// indexes cur when cur is an ordered sequence; otherwise the segment is
// read as a property key of that literal name.
func Step(cur interface{}, segment string) (interface{}, bool) {
	if elems, ok := Elements(cur); ok && isDigits(segment) {
		idx, err := strconv.Atoi(segment)
		if err != nil || idx >= len(elems) {
			return nil, false
		}
		return elems[idx], true
	}
	return Lookup(cur, segment)
}

// Lookup reads the property named key from cur. It supports Getter
// implementations, string-keyed maps, and structs, matching struct fields
// by json tag first and exported field name second.
func Lookup(cur interface{}, key string) (interface{}, bool) {
	if getter, ok := cur.(Getter); ok {
		return getter.Get(key)
	}

	switch t := cur.(type) {
	case map[string]interface{}:
		v, ok := t[key]
		return v, ok
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() { //nolint:exhaustive // only container kinds participate in lookup
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		value := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Struct:
		return structFieldValue(rv, key)
	default:
		return nil, false
	}
}

// Elements materializes cur as a slice of elements. The second return is
// false when cur is not an ordered sequence.
func Elements(cur interface{}) ([]interface{}, bool) {
	if t, ok := cur.([]interface{}); ok {
		return t, true
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	elems := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// MapKeys returns the string keys of cur when it is a string-keyed map,
// typed or untyped. The result is non-nil (but possibly empty) for maps
// and nil for everything else.
func MapKeys(cur interface{}) []string {
	if t, ok := cur.(map[string]interface{}); ok {
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		return keys
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	return keys
}

func structFieldValue(rv reflect.Value, key string) (interface{}, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == "-" {
			continue
		}
		if tagName == key || field.Name == key {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
