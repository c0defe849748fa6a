// Package sanitize neutralizes HTML/script content in untrusted request
// payloads before any business logic sees them.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// policy strips every tag and attribute; script/style content is dropped
// entirely rather than unwrapped.
var policy = bluemonday.StrictPolicy()

// Value walks an arbitrary decoded-JSON value (map, slice, string or scalar)
// and returns the same shape with every string leaf sanitized. Maps and
// slices are scrubbed in place. Non-string leaves pass through unchanged.
func Value(x any) any {
	switch v := x.(type) {
	case map[string]any:
		for k, val := range v {
			v[k] = Value(val)
		}
		return v
	case []any:
		for i := range v {
			v[i] = Value(v[i])
		}
		return v
	case string:
		return String(v)
	default:
		return v
	}
}

// String sanitizes a single string leaf. Idempotent.
func String(s string) string {
	return policy.Sanitize(s)
}
