package jsonschema4

import "unicode/utf8"

// evaluateMinLength and evaluateMaxLength apply minLength/maxLength,
// counting characters (runes) per RFC 8259, not bytes (spec §4.3 string
// validator).
func evaluateMinLength(min *int, s string, p path) *ValidationError {
	if min == nil {
		return nil
	}
	n := utf8.RuneCountInString(s)
	if n < *min {
		e := newError(p, "String is too short: %d/%d.", n, *min)
		return &e
	}
	return nil
}

func evaluateMaxLength(max *int, s string, p path) *ValidationError {
	if max == nil {
		return nil
	}
	n := utf8.RuneCountInString(s)
	if n > *max {
		e := newError(p, "String is too long: %d/%d.", n, *max)
		return &e
	}
	return nil
}
