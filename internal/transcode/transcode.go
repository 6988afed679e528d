// Package transcode converts decoded JSON values between the wire key
// convention (snake_case) and the internal key convention (lowerCamelCase).
//
// Only identifier-style keys are supported: lowercase words separated by
// single underscores on the wire, and lowerCamelCase internally. Keys with
// consecutive uppercase letters or digits adjacent to a separator do not
// round-trip and are outside the contract.
package transcode

import "strings"

// ToInternalForm rewrites every map key from snake_case to lowerCamelCase,
// recursing through nested maps and slices. Scalar values and nil pass
// through unchanged.
func ToInternalForm(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[CamelKey(k)] = ToInternalForm(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = ToInternalForm(val)
		}
		return out
	default:
		return v
	}
}

// ToWireForm is the inverse of ToInternalForm: lowerCamelCase keys become
// snake_case, recursively.
func ToWireForm(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[SnakeKey(k)] = ToWireForm(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = ToWireForm(val)
		}
		return out
	default:
		return v
	}
}

// CamelKey converts a single snake_case key to lowerCamelCase.
func CamelKey(key string) string {
	if !strings.ContainsRune(key, '_') {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	upperNext := false
	for _, r := range key {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeKey converts a single lowerCamelCase key to snake_case.
func SnakeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
