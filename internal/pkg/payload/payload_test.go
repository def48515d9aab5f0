package payload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNeverFails(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"truncated object", `{"role":"teach`},
		{"not an object", `[1,2,3]`},
		{"plain text", "hello"},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Parse(strings.NewReader(tt.body))
			assert.NotNil(t, fields)
			assert.Equal(t, "", fields.String("role"))
			assert.Equal(t, 0.0, fields.Number("cgpa"))
		})
	}
}

func TestStringDefaults(t *testing.T) {
	fields := ParseBytes([]byte(`{"role":"teacher","year":3}`))

	assert.Equal(t, "teacher", fields.String("role"))
	assert.Equal(t, "", fields.String("missing"))
	// Wrong type decodes to the default, not an error.
	assert.Equal(t, "", fields.String("year"))
}

func TestNumberDefaults(t *testing.T) {
	fields := ParseBytes([]byte(`{"cgpa":8.75,"name":"John"}`))

	assert.Equal(t, 8.75, fields.Number("cgpa"))
	assert.Equal(t, 0.0, fields.Number("missing"))
	assert.Equal(t, 0.0, fields.Number("name"))
}

func TestIntTruncates(t *testing.T) {
	fields := ParseBytes([]byte(`{"year":3.9,"studentId":1001}`))

	assert.Equal(t, 3, fields.Int("year"))
	assert.Equal(t, 1001, fields.Int("studentId"))
	assert.Equal(t, 0, fields.Int("missing"))
}

func TestHas(t *testing.T) {
	fields := ParseBytes([]byte(`{"remarks":""}`))

	assert.True(t, fields.Has("remarks"))
	assert.False(t, fields.Has("cgpa"))
}

func TestParseNilReader(t *testing.T) {
	fields := Parse(nil)
	assert.NotNil(t, fields)
	assert.Equal(t, "", fields.String("anything"))
}
