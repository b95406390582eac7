package jsonschema4

import (
	"regexp"
	"strconv"
)

var integerShapePattern = regexp.MustCompile(`^-?\d+$`)

// validateInteger delegates to the number validator (spec §4.3: "integer
// delegates to the number validator"), then additionally rejects values
// whose decimal form carries a fractional part.
func (ctx *evalContext) validateInteger(schema, data *Value, p path) []ValidationError {
	errs := ctx.validateNumber(schema, data, p)
	if len(errs) > 0 && data.Kind() != KindInteger && data.Kind() != KindNumber {
		// validateNumber already reported the type mismatch against "number";
		// restate it against "integer" so alternative-coalescing sees the
		// expected type this branch actually wanted.
		return []ValidationError{typeMismatchError(p, "integer", data)}
	}

	if data.Kind() == KindNumber {
		s := strconv.FormatFloat(data.Float(), 'f', -1, 64)
		if !integerShapePattern.MatchString(s) {
			errs = append(errs, newError(p, "Expected integer - got number."))
		}
	}

	return errs
}
