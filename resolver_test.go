package jsonschema4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_BareWordRefResolvesToDefinitions(t *testing.T) {
	root := FromNative(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"address": map[string]any{"$ref": "Address"},
		},
		"definitions": map[string]any{
			"Address": map[string]any{"type": "string"},
		},
	})
	resolved, err := IngestValue(root, "http://test.invalid/schema#", NewConfig())
	require.NoError(t, err)

	addrSchema := schemaGet(schemaGet(resolved, "properties"), "address")
	require.NotNil(t, addrSchema)
	_, hasRef := addrSchema.Object().Get("$ref")
	assert.False(t, hasRef, "resolved schema must contain no $ref key")
	typeName, _ := schemaString(addrSchema, "type")
	assert.Equal(t, "string", typeName)
}

func TestResolver_IdempotentOnRepeatedIngestion(t *testing.T) {
	cfg := NewConfig()
	root := func() *Value {
		return FromNative(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"$ref": "#/definitions/Name"},
			},
			"definitions": map[string]any{
				"Name": map[string]any{"type": "string"},
			},
		})
	}

	first, err := IngestValue(root(), "http://test.invalid/a#", cfg)
	require.NoError(t, err)
	second, err := IngestValue(root(), "http://test.invalid/a#", cfg)
	require.NoError(t, err)

	assert.Equal(t, CanonicalForm(first), CanonicalForm(second))
}
