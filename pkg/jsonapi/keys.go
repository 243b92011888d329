package jsonapi

import (
	strutil "github.com/gnuletik/datocms-client-go/internal/util/strings"
)

// CamelizeKey converts a single snake_case key to camelCase
func CamelizeKey(key string) string {
	return strutil.ToCamelCase(key)
}

// CamelizeKeys returns a copy of v with every map key converted from
// snake_case to camelCase. Nested maps and slices are walked recursively;
// other values are returned as-is.
func CamelizeKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[CamelizeKey(k)] = CamelizeKeys(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = CamelizeKeys(inner)
		}
		return out
	default:
		return v
	}
}
