// Package payload implements the lenient request decoding used by every
// handler. Decoding is total: malformed bodies, missing keys, and wrong
// value types all yield zero values instead of errors, and handlers treat
// an empty field as the missing-field signal.
package payload

import (
	"encoding/json"
	"io"
)

// Fields is a flat key to value view of a JSON request body.
type Fields map[string]interface{}

// Parse reads a JSON object from r. It never fails: a malformed or empty
// body produces empty Fields. Strict decoding must not be reintroduced
// here; handlers rely on absent keys decoding to defaults.
func Parse(r io.Reader) Fields {
	if r == nil {
		return Fields{}
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return Fields{}
	}
	return ParseBytes(data)
}

// ParseBytes decodes a JSON object from raw bytes with the same
// total-parse contract as Parse.
func ParseBytes(data []byte) Fields {
	fields := Fields{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return Fields{}
	}
	return fields
}

// String returns the named string field, or "" when the key is absent or
// holds a non-string value.
func (f Fields) String(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// Number returns the named numeric field, or 0 when the key is absent or
// holds a non-numeric value.
func (f Fields) Number(key string) float64 {
	if v, ok := f[key].(float64); ok {
		return v
	}
	return 0
}

// Int returns the named numeric field truncated to an integer.
func (f Fields) Int(key string) int {
	return int(f.Number(key))
}

// Has reports whether the key is present at all, regardless of type.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}
