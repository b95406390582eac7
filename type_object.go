package jsonschema4

import (
	"regexp"
	"strings"
)

// documentaryKeys are never reported as disallowed "additional" properties
// (spec §3's object validator: "excluding the documentary keys
// description, id, title").
var documentaryKeys = map[string]bool{"description": true, "id": true, "title": true}

// validateObject applies the "object" type: required/properties/
// patternProperties/additionalProperties, minProperties/maxProperties, and
// default-value injection (spec §3's supplemented "defaults" feature) when
// coercion is enabled.
func (ctx *evalContext) validateObject(schema, data *Value, p path) []ValidationError {
	if data.Kind() != KindObject {
		return []ValidationError{typeMismatchError(p, "object", data)}
	}
	obj := data.Object()

	var errs []ValidationError

	if min, ok := schemaInt(schema, "minProperties"); ok {
		if e := evaluateMinProperties(&min, obj.Len(), p); e != nil {
			errs = append(errs, *e)
		}
	}
	if max, ok := schemaInt(schema, "maxProperties"); ok {
		if e := evaluateMaxProperties(&max, obj.Len(), p); e != nil {
			errs = append(errs, *e)
		}
	}

	properties := schemaGet(schema, "properties")
	required := schemaStringArray(schema, "required")

	if properties != nil {
		propsObj := properties.Object()
		for _, name := range propsObj.Keys() {
			childSchema, _ := propsObj.Get(name)
			value, present := obj.Get(name)
			if !present {
				if ctx.cfg.Coerce {
					if def := schemaGet(childSchema, "default"); def != nil {
						obj.Set(name, def)
						continue
					}
				}
				if isPropertyRequired(required, name, childSchema) {
					errs = append(errs, missingPropertyError(p.child(name)))
				}
				continue
			}
			errs = append(errs, ctx.validate(childSchema, value, p.child(name))...)
		}
	} else {
		for _, name := range required {
			if _, present := obj.Get(name); !present {
				errs = append(errs, missingPropertyError(p.child(name)))
			}
		}
	}

	patternProperties := schemaGet(schema, "patternProperties")
	var compiledPatterns []compiledPatternProp
	if patternProperties != nil {
		ppObj := patternProperties.Object()
		for _, raw := range ppObj.Keys() {
			sub, _ := ppObj.Get(raw)
			re := ctx.patterns.compile(sub, raw)
			compiledPatterns = append(compiledPatterns, compiledPatternProp{re: re, schema: sub})
		}
	}

	additional := schemaGet(schema, "additionalProperties")

	var disallowed []string
	for _, name := range obj.Keys() {
		if documentaryKeys[name] {
			continue
		}
		value, _ := obj.Get(name)

		matchedByProperties := false
		if properties != nil {
			if _, ok := properties.Object().Get(name); ok {
				matchedByProperties = true
			}
		}

		matchedByPattern := false
		for _, cp := range compiledPatterns {
			if cp.re != nil && cp.re.MatchString(name) {
				matchedByPattern = true
				errs = append(errs, ctx.validate(cp.schema, value, p.child(name))...)
			}
		}

		if matchedByProperties || matchedByPattern || additional == nil {
			continue
		}
		if additional.Kind() == KindBool {
			if !additional.Bool() {
				disallowed = append(disallowed, name)
			}
			continue
		}
		errs = append(errs, ctx.validate(additional, value, p.child(name))...)
	}

	if len(disallowed) > 0 {
		errs = append(errs, newError(p, "Properties not allowed: %s.", strings.Join(disallowed, ", ")))
	}

	return errs
}

type compiledPatternProp struct {
	re     *regexp.Regexp
	schema *Value
}
