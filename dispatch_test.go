package jsonschema4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_AllOfRequiresEveryAlternative(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"allOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "string", "minLength": 3},
		},
	})
	v := New()
	v.schema = schema

	assert.Empty(t, v.Validate(FromNative("abcd")).Errors)
	assert.NotEmpty(t, v.Validate(FromNative("ab")).Errors)
}

func TestDispatch_AnyOfSucceedsOnOneAlternative(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"anyOf": []any{
			map[string]any{"type": "integer", "minimum": 10},
			map[string]any{"type": "string"},
		},
	})
	v := New()
	v.schema = schema

	assert.Empty(t, v.Validate(FromNative("hello")).Errors)
	assert.Empty(t, v.Validate(FromNative(int64(42))).Errors)
	assert.NotEmpty(t, v.Validate(FromNative(int64(1))).Errors)
}

func TestDispatch_NotRejectsMatchingData(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"not": map[string]any{"type": "string"},
	})
	v := New()
	v.schema = schema

	result := v.Validate(FromNative("x"))
	assert := assert.New(t)
	assert.Len(result.Errors, 1)
	assert.Equal("Should not match.", result.Errors[0].Message)
	assert.Empty(v.Validate(FromNative(int64(1))).Errors)
}

func TestAggregateBuckets_CoalescesSameSuffixMessages(t *testing.T) {
	buckets := [][]ValidationError{
		{{Path: "/", Message: "Expected string - got boolean."}},
		{{Path: "/", Message: "Expected integer - got boolean."}},
	}
	got := aggregateBuckets(buckets)
	assert.Len(t, got, 1)
	assert.Equal(t, "Expected string, integer - got boolean.", got[0].Message)
}

func TestAggregateBuckets_PrefixesUnrelatedMessages(t *testing.T) {
	buckets := [][]ValidationError{
		{{Path: "/x", Message: "Missing property."}},
		{{Path: "/x", Message: "Not in enum list: 1, 2"}},
	}
	got := aggregateBuckets(buckets)
	assert.Len(t, got, 2)
	assert.Equal(t, "[0] Missing property.", got[0].Message)
	assert.Equal(t, "[1] Not in enum list: 1, 2", got[1].Message)
}

func TestDispatch_TupleItemsExtendByRepeatingLastSchema(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":  "array",
		"items": []any{map[string]any{"type": "string"}, map[string]any{"type": "integer"}},
	})
	v := New()
	v.schema = schema

	assert.Empty(t, v.Validate(FromNative([]any{"a", int64(1), int64(2), int64(3)})).Errors)
	assert.NotEmpty(t, v.Validate(FromNative([]any{"a", int64(1), "oops"})).Errors)
}

func TestDispatch_TupleAdditionalItemsFalseFailsOnLengthMismatch(t *testing.T) {
	schema := schemaFromNative(t, map[string]any{
		"type":            "array",
		"items":           []any{map[string]any{"type": "string"}},
		"additionalItems": false,
	})
	v := New()
	v.schema = schema

	assert.Empty(t, v.Validate(FromNative([]any{"a"})).Errors)
	assert.NotEmpty(t, v.Validate(FromNative([]any{"a", "b"})).Errors)
}
