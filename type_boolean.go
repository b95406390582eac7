package jsonschema4

// validateBoolean applies the "boolean" type (spec §3): besides an actual
// boolean, it accepts any value whose string form is "0" or "1" — an
// unconditional leniency, independent of the coerce option, and with no
// further coercion.
func (ctx *evalContext) validateBoolean(data *Value, p path) []ValidationError {
	switch data.Kind() {
	case KindBool:
		return nil
	case KindInteger:
		if data.Int() == 0 || data.Int() == 1 {
			return nil
		}
	case KindString:
		if s := data.String(); s == "0" || s == "1" {
			return nil
		}
	}
	return []ValidationError{typeMismatchError(p, "boolean", data)}
}
