package jsonschema4

// isPropertyRequired reports whether propName must be present, either
// because it is named in the sibling "required" array, or because its own
// child schema carries a truthy "required" flag — a Draft-3 legacy
// accommodation that spec §9's Open Questions says to preserve as-is.
func isPropertyRequired(required []string, propName string, childSchema *Value) bool {
	for _, r := range required {
		if r == propName {
			return true
		}
	}
	if childSchema == nil || childSchema.Kind() != KindObject {
		return false
	}
	if v, ok := childSchema.Object().Get("required"); ok {
		return v.Kind() == KindBool && v.Bool()
	}
	return false
}

// missingPropertyError builds the "Missing property." diagnostic emitted
// at the absent property's own path (spec §4.3, §4.7).
func missingPropertyError(p path) ValidationError {
	return newError(p, "Missing property.")
}
