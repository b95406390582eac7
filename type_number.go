package jsonschema4

// validateNumber applies the "number" type: minimum/maximum/multipleOf,
// plus opt-in string coercion (spec §4.5). "integer" is accepted too,
// since every integer is a number.
func (ctx *evalContext) validateNumber(schema, data *Value, p path) []ValidationError {
	if data.Kind() == KindString && ctx.cfg.Coerce {
		data.coerceToNumber()
	}
	if data.Kind() != KindInteger && data.Kind() != KindNumber {
		return []ValidationError{typeMismatchError(p, "number", data)}
	}

	var errs []ValidationError
	value := NewRatFromValue(data)

	min := schemaRat(schema, "minimum")
	exclMin, _ := schemaBool(schema, "exclusiveMinimum")
	if e := evaluateMinimum(min, exclMin, value, p); e != nil {
		errs = append(errs, *e)
	}

	max := schemaRat(schema, "maximum")
	exclMax, _ := schemaBool(schema, "exclusiveMaximum")
	if e := evaluateMaximum(max, exclMax, value, p); e != nil {
		errs = append(errs, *e)
	}

	if divisor := schemaRat(schema, "multipleOf"); divisor != nil {
		if e := evaluateMultipleOf(divisor, value, p); e != nil {
			errs = append(errs, *e)
		}
	} else if divisor := schemaRat(schema, "divisibleBy"); divisor != nil {
		if e := evaluateMultipleOf(divisor, value, p); e != nil {
			errs = append(errs, *e)
		}
	}

	if e := ctx.evaluateFormat(schema, data.ToNative(), p); e != nil {
		errs = append(errs, *e)
	}

	return errs
}
