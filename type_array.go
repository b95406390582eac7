package jsonschema4

import "strings"

// validateArray applies the "array" type: items (homogeneous schema or a
// tuple of per-position schemas) with additionalItems, minItems/maxItems,
// uniqueItems, and the Draft-3 "collectionFormat" accommodation of
// splitting a delimited string into an array before validating (spec §9
// Open Questions; spec §4.5 coercion family).
func (ctx *evalContext) validateArray(schema, data *Value, p path) []ValidationError {
	if data.Kind() == KindString && ctx.cfg.Coerce {
		if sep, ok := collectionFormatSeparator(schema); ok {
			parts := strings.Split(data.String(), sep)
			items := make([]*Value, len(parts))
			for i, part := range parts {
				items[i] = StringValue(part)
			}
			*data = *ArrayValue(items)
		}
	}
	if data.Kind() != KindArray {
		return []ValidationError{typeMismatchError(p, "array", data)}
	}
	items := data.Array()

	var errs []ValidationError

	if min, ok := schemaInt(schema, "minItems"); ok {
		if e := evaluateMinItems(&min, len(items), p); e != nil {
			errs = append(errs, *e)
		}
	}
	if max, ok := schemaInt(schema, "maxItems"); ok {
		if e := evaluateMaxItems(&max, len(items), p); e != nil {
			errs = append(errs, *e)
		}
	}
	if unique, ok := schemaBool(schema, "uniqueItems"); ok && unique {
		if e := evaluateUniqueItems(items, p); e != nil {
			errs = append(errs, *e)
		}
	}

	itemsSchema := schemaGet(schema, "items")
	switch {
	case itemsSchema == nil:
		// absent "items" imposes no per-element constraint.
	case itemsSchema.Kind() == KindArray:
		errs = append(errs, ctx.validateTupleItems(schema, itemsSchema.Array(), items, p)...)
	default:
		for i, item := range items {
			errs = append(errs, ctx.validate(itemsSchema, item, p.index(i))...)
		}
	}

	return errs
}

// validateTupleItems validates each positional schema against its matching
// element. Elements past the tuple's length are governed by
// additionalItems: a schema validates each of them; true (the default)
// extends the tuple by repeating its last schema; false fails the whole
// array with a length mismatch (spec §3's "tuple validation").
func (ctx *evalContext) validateTupleItems(schema *Value, tuple []*Value, items []*Value, p path) []ValidationError {
	var errs []ValidationError
	for i, item := range items {
		if i < len(tuple) {
			errs = append(errs, ctx.validate(tuple[i], item, p.index(i))...)
		}
	}

	if len(items) <= len(tuple) {
		return errs
	}

	additional := schemaGet(schema, "additionalItems")
	if additional != nil && additional.Kind() == KindBool && !additional.Bool() {
		errs = append(errs, newError(p, "Too many items: %d/%d.", len(items), len(tuple)))
		return errs
	}

	var extraSchema *Value
	if additional != nil && additional.Kind() != KindBool {
		extraSchema = additional
	} else if len(tuple) > 0 {
		extraSchema = tuple[len(tuple)-1]
	}
	if extraSchema == nil {
		return errs
	}
	for i := len(tuple); i < len(items); i++ {
		errs = append(errs, ctx.validate(extraSchema, items[i], p.index(i))...)
	}
	return errs
}

// collectionFormatSeparator returns the string separator the schema's
// "collectionFormat" keyword names, if present.
func collectionFormatSeparator(schema *Value) (string, bool) {
	format, ok := schemaString(schema, "collectionFormat")
	if !ok {
		return ",", false
	}
	switch format {
	case "csv", "":
		return ",", true
	case "ssv":
		return " ", true
	case "tsv":
		return "\t", true
	case "pipes":
		return "|", true
	default:
		return ",", false
	}
}
