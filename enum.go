package jsonschema4

import "strings"

// evaluateEnum checks that data equals one of the schema's enum members
// under canonical-form equality (spec §4.6, §7 template "Not in enum
// list: …").
func evaluateEnum(members []*Value, data *Value, p path) *ValidationError {
	if len(members) == 0 {
		return nil
	}
	for _, member := range members {
		if ValuesEqual(data, member) {
			return nil
		}
	}
	forms := make([]string, len(members))
	for i, m := range members {
		forms[i] = CanonicalForm(m)
	}
	e := newError(p, "Not in enum list: %s", strings.Join(forms, ", "))
	return &e
}
