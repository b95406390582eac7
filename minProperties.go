package jsonschema4

// evaluateMinProperties and evaluateMaxProperties apply
// minProperties/maxProperties (spec §4.3 object validator).
func evaluateMinProperties(min *int, n int, p path) *ValidationError {
	if min == nil || n >= *min {
		return nil
	}
	e := newError(p, "Not enough properties: %d/%d.", n, *min)
	return &e
}

func evaluateMaxProperties(max *int, n int, p path) *ValidationError {
	if max == nil || n <= *max {
		return nil
	}
	e := newError(p, "Too many properties: %d/%d.", n, *max)
	return &e
}
