package jsonschema4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaFromNative(t *testing.T, raw map[string]any) *Value {
	t.Helper()
	v := FromNative(raw)
	resolved, err := IngestValue(v, "http://test.invalid/schema#", NewConfig())
	require.NoError(t, err)
	return resolved
}

// Seed scenario 1 (spec §8): a negative age fails its minimum bound.
func TestValidate_MinimumBoundViolation(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":     "object",
		"required": []any{"firstName", "lastName"},
		"properties": map[string]any{
			"firstName": map[string]any{"type": "string"},
			"lastName":  map[string]any{"type": "string"},
			"age":       map[string]any{"type": "integer", "minimum": 0},
		},
	})
	data := FromNative(map[string]any{"firstName": "Jan", "lastName": "T", "age": -42})

	v := New()
	v.schema = schema
	result := v.Validate(data)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/age", result.Errors[0].Path)
	assert.Equal(t, "-42 < minimum(0)", result.Errors[0].Message)
}

// Seed scenario 2: uniqueItems rejects a duplicate element.
func TestValidate_UniqueItemsViolation(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "integer"},
		"uniqueItems": true,
	})
	data := FromNative([]any{1, 2, 2})

	v := New()
	v.schema = schema
	result := v.Validate(data)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/", result.Errors[0].Path)
	assert.Equal(t, "Unique items required.", result.Errors[0].Message)
}

// Seed scenario 3: oneOf failures against two type alternatives coalesce
// into one "Expected X, Y - got Z." message.
func TestValidate_OneOfCoalescedTypeMismatch(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	})
	data := FromNative(true)

	v := New()
	v.schema = schema
	result := v.Validate(data)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/", result.Errors[0].Path)
	assert.Equal(t, "Expected string, integer - got boolean.", result.Errors[0].Message)
}

// Seed scenario 4: disallowed additional properties are listed together.
func TestValidate_AdditionalPropertiesDisallowed(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
		},
	})
	data := FromNative(map[string]any{"a": "x", "b": 1, "c": 2})

	v := New()
	v.schema = schema
	result := v.Validate(data)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/", result.Errors[0].Path)
	assert.Equal(t, "Properties not allowed: b, c.", result.Errors[0].Message)
}

// Seed scenario 5: a schema that refers to itself through "#" closes the
// cycle and a finite data tree validates cleanly.
func TestValidate_CyclicSchemaTerminates(t *testing.T) {
	raw := FromNative(map[string]any{
		"id":   "http://x#",
		"type": "object",
		"properties": map[string]any{
			"node": map[string]any{"$ref": "#"},
		},
	})
	resolved, err := IngestValue(raw, "http://x#", NewConfig())
	require.NoError(t, err)

	data := FromNative(map[string]any{"node": map[string]any{"node": map[string]any{}}})

	v := New()
	v.schema = resolved
	result := v.Validate(data)

	assert.Empty(t, result.Errors)
}

// Seed scenario 6: an unmatched format predicate reports the fixed
// "Does not match <fmt> format." template.
func TestValidate_FormatMismatch(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":   "string",
		"format": "email",
	})
	data := FromNative("not-an-email")

	v := New()
	v.schema = schema
	result := v.Validate(data)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/", result.Errors[0].Path)
	assert.Equal(t, "Does not match email format.", result.Errors[0].Message)
}

func TestValidate_CoerceRewritesStringToInteger(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{"type": "integer"})

	off := New()
	off.schema = schema
	assert.NotEmpty(t, off.Validate(FromNative("42")).Errors)

	on := New(WithCoerce(true))
	on.schema = schema
	data := FromNative("42")
	result := on.Validate(data)
	assert.Empty(t, result.Errors)
	assert.Equal(t, KindInteger, data.Kind())
	assert.Equal(t, int64(42), data.Int())
}

func TestValidate_RequiredEmptyIsNoop(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":     "object",
		"required": []any{},
	})
	result := New()
	result.schema = schema
	assert.Empty(t, result.Validate(FromNative(map[string]any{})).Errors)
}

func TestValidate_MaxPropertiesBoundary(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":          "object",
		"maxProperties": 2,
	})
	v := New()
	v.schema = schema

	assert.Empty(t, v.Validate(FromNative(map[string]any{"a": 1, "b": 2})).Errors)
	assert.NotEmpty(t, v.Validate(FromNative(map[string]any{"a": 1, "b": 2, "c": 3})).Errors)
}
