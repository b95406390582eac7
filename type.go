package jsonschema4

// validateOneType dispatches to the validator for a single named type
// (spec §3's type vocabulary plus the "any"/"file" pseudo-types spec §9
// keeps as a Draft-3 accommodation).
func (ctx *evalContext) validateOneType(name string, schema, data *Value, p path) []ValidationError {
	switch name {
	case "null":
		return ctx.validateNull(data, p)
	case "boolean":
		return ctx.validateBoolean(data, p)
	case "integer":
		return ctx.validateInteger(schema, data, p)
	case "number":
		return ctx.validateNumber(schema, data, p)
	case "string":
		return ctx.validateString(schema, data, p)
	case "array":
		return ctx.validateArray(schema, data, p)
	case "object":
		return ctx.validateObject(schema, data, p)
	case "any", "file":
		return nil
	default:
		return []ValidationError{newError(p, "Cannot validate type '%s'", name)}
	}
}

// typeMismatchError builds the "Expected X - got Y." diagnostic that
// aggregateBuckets looks for when coalescing type-alternative failures
// (spec §4.3, §4.7).
func typeMismatchError(p path, expected string, data *Value) ValidationError {
	return newError(p, "Expected %s - got %s.", expected, actualTypeName(data))
}

// actualTypeName reports the Draft-4 type name a value would be described
// as in an error message — "null" for a nil Value, the Kind's name
// otherwise.
func actualTypeName(data *Value) string {
	if data == nil {
		return "null"
	}
	return data.Kind().String()
}
