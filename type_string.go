package jsonschema4

// validateString applies the "string" type: minLength/maxLength/pattern/
// format, plus opt-in numeric coercion (spec §4.5).
func (ctx *evalContext) validateString(schema, data *Value, p path) []ValidationError {
	if (data.Kind() == KindInteger || data.Kind() == KindNumber) && ctx.cfg.Coerce {
		data.coerceToString()
	}
	if data.Kind() != KindString {
		return []ValidationError{typeMismatchError(p, "string", data)}
	}
	s := data.String()

	var errs []ValidationError

	min, hasMin := schemaInt(schema, "minLength")
	if hasMin {
		if e := evaluateMinLength(&min, s, p); e != nil {
			errs = append(errs, *e)
		}
	}
	max, hasMax := schemaInt(schema, "maxLength")
	if hasMax {
		if e := evaluateMaxLength(&max, s, p); e != nil {
			errs = append(errs, *e)
		}
	}

	if raw, ok := schemaString(schema, "pattern"); ok {
		re := ctx.patterns.compile(schema, raw)
		if e := evaluatePattern(re, raw, s, p); e != nil {
			errs = append(errs, *e)
		}
	}

	if e := ctx.evaluateFormat(schema, s, p); e != nil {
		errs = append(errs, *e)
	}

	return errs
}
