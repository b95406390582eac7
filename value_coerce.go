package jsonschema4

import "strconv"

// coerceToNumber rewrites v in place from a numeric string to the parsed
// integer or number (spec §4.5: "the validator rewrites the input in
// place ... so subsequent consumers see the canonical flavor"). Reports
// whether s actually parsed as a number.
func (v *Value) coerceToNumber() bool {
	if v.kind != KindString {
		return false
	}
	s := v.s
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		v.kind, v.i, v.f, v.s = KindInteger, i, float64(i), ""
		return true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v.kind, v.f, v.s = KindNumber, f, ""
		return true
	}
	return false
}

// coerceToString rewrites v in place from a numeric value to its string
// form.
func (v *Value) coerceToString() {
	switch v.kind {
	case KindInteger:
		v.s = strconv.FormatInt(v.i, 10)
	case KindNumber:
		v.s = strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return
	}
	v.kind = KindString
}
