// Package casing rewrites the keys of decoded JSON documents between the
// caller convention (snake_case) and the provider convention (camelCase).
//
// Both directions recurse through nested maps and slices, leave leaf values
// untouched and always return a new structure; the input is never modified.
//
// Known lossy cases: acronyms collapse on a round trip ("merchantURL" becomes
// "merchant_url" and then "merchantUrl"), and PascalCase keys come back as
// camelCase.
package casing

import (
	"github.com/iancoleman/strcase"
)

// ToOuterCase rewrites keys from snake_case to camelCase.
func ToOuterCase(value interface{}) interface{} {
	return transform(value, strcase.ToLowerCamel)
}

// ToInnerCase rewrites keys from camelCase or PascalCase to snake_case.
func ToInnerCase(value interface{}) interface{} {
	return transform(value, strcase.ToSnake)
}

// OuterKeys is ToOuterCase for a single map.
func OuterKeys(m map[string]interface{}) map[string]interface{} {
	return transformMap(m, strcase.ToLowerCamel)
}

// InnerKeys is ToInnerCase for a single map.
func InnerKeys(m map[string]interface{}) map[string]interface{} {
	return transformMap(m, strcase.ToSnake)
}

func transform(value interface{}, key func(string) string) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return transformMap(v, key)
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[key(k)] = s
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = transform(item, key)
		}
		return out
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(v))
		for i, item := range v {
			out[i] = transformMap(item, key)
		}
		return out
	default:
		return value
	}
}

func transformMap(m map[string]interface{}, key func(string) string) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[key(k)] = transform(v, key)
	}
	return out
}
