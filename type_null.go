package jsonschema4

// validateNull applies the "null" type (spec §3).
func (ctx *evalContext) validateNull(data *Value, p path) []ValidationError {
	if data.Kind() != KindNull {
		return []ValidationError{typeMismatchError(p, "null", data)}
	}
	return nil
}
