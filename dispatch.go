package jsonschema4

import (
	"fmt"
	"regexp"
	"strings"
)

// evalContext carries the per-validation-call collaborators: the
// configuration (coercion flag, format table) and the per-call pattern
// cache. It does no I/O and is safe to reuse within a single
// validate() call tree but not across goroutines (spec §5).
type evalContext struct {
	cfg      *Config
	patterns *patternCompiler
}

// validate is the keyword dispatcher (spec §4.3): it walks schema and data
// in parallel, returning an ordered list of errors.
func (ctx *evalContext) validate(schema *Value, data *Value, p path) []ValidationError {
	if schema == nil {
		return nil
	}

	var errs []ValidationError
	switch {
	case schemaGet(schema, "type") != nil:
		errs = ctx.validateTypeBuckets(schemaTypes(schema), schema, data, p)
	case schemaSchemaArray(schema, "allOf") != nil:
		errs = ctx.validateComposite(schemaSchemaArray(schema, "allOf"), data, p, compositeAll)
	case schemaSchemaArray(schema, "anyOf") != nil:
		errs = ctx.validateComposite(schemaSchemaArray(schema, "anyOf"), data, p, compositeAny)
	case schemaSchemaArray(schema, "oneOf") != nil:
		errs = ctx.validateComposite(schemaSchemaArray(schema, "oneOf"), data, p, compositeOne)
	default:
		implied := "any"
		if schemaGet(schema, "properties") != nil {
			implied = "object"
		}
		errs = ctx.validateTypeBuckets([]string{implied}, schema, data, p)
	}

	if notSchema := schemaGet(schema, "not"); notSchema != nil {
		if len(ctx.validate(notSchema, data, p)) == 0 {
			e := newError(p, "Should not match.")
			errs = append(errs, e)
		}
	}

	if members := schemaArray(schema, "enum"); members != nil {
		if e := evaluateEnum(members, data, p); e != nil {
			errs = append(errs, *e)
		}
	}

	return errs
}

// validateTypeBuckets applies spec §4.3's list-valued-type rule: a single
// type is validated directly; multiple types are alternatives, and
// validation succeeds if at least one bucket is empty (the same rule as
// anyOf).
func (ctx *evalContext) validateTypeBuckets(types []string, schema, data *Value, p path) []ValidationError {
	if len(types) <= 1 {
		name := "any"
		if len(types) == 1 {
			name = types[0]
		}
		return ctx.validateOneType(name, schema, data, p)
	}
	buckets := make([][]ValidationError, len(types))
	for i, t := range types {
		buckets[i] = ctx.validateOneType(t, schema, data, p)
	}
	if anyBucketEmpty(buckets) {
		return nil
	}
	return aggregateBuckets(buckets)
}

type compositeMode int

const (
	compositeAll compositeMode = iota
	compositeAny
	compositeOne
)

// validateComposite implements allOf (all empty), anyOf (at least one
// empty), oneOf (exactly one empty) per spec §4.3.
func (ctx *evalContext) validateComposite(subs []*Value, data *Value, p path, mode compositeMode) []ValidationError {
	buckets := make([][]ValidationError, len(subs))
	for i, sub := range subs {
		buckets[i] = ctx.validate(sub, data, p)
	}
	switch mode {
	case compositeAny:
		if anyBucketEmpty(buckets) {
			return nil
		}
		return aggregateBuckets(buckets)
	case compositeOne:
		emptyCount := 0
		for _, b := range buckets {
			if len(b) == 0 {
				emptyCount++
			}
		}
		if emptyCount == 1 {
			return nil
		}
		if emptyCount > 1 {
			e := newError(p, "Expected only one to match.")
			return []ValidationError{e}
		}
		return aggregateBuckets(buckets)
	default: // compositeAll
		return aggregateBuckets(buckets)
	}
}

// evaluateFormat applies the schema's "format" keyword, if any, against
// native (a string, float64, or int64 drawn from the data value) (spec
// §4.4). An unrecognized format name either warns or is silently ignored,
// depending on Config.WarnOnMissingFormat.
func (ctx *evalContext) evaluateFormat(schema *Value, native any, p path) *ValidationError {
	name, ok := schemaString(schema, "format")
	if !ok {
		return nil
	}
	check, known := ctx.cfg.Formats[name]
	if !known {
		if ctx.cfg.WarnOnMissingFormat {
			ctx.cfg.warn("unknown format %q at %s, skipping", name, p.String())
		}
		return nil
	}
	if check(native) {
		return nil
	}
	e := newError(p, "Does not match %s format.", name)
	return &e
}

func anyBucketEmpty(buckets [][]ValidationError) bool {
	for _, b := range buckets {
		if len(b) == 0 {
			return true
		}
	}
	return false
}

var expectedGotPattern = regexp.MustCompile(`^Expected (.+) - got (.+)\.$`)

type indexedError struct {
	idx int
	msg string
}

// aggregateBuckets implements spec §4.3's error-aggregation rule: group by
// path, dedupe by message, keep a lone surviving message as it is,
// coalesce several "Expected X - got Y." alternatives into one message,
// otherwise prefix each surviving message with its alternative's index.
func aggregateBuckets(buckets [][]ValidationError) []ValidationError {
	var pathOrder []string
	byPath := make(map[string][]indexedError)
	for i, bucket := range buckets {
		for _, e := range bucket {
			if _, ok := byPath[e.Path]; !ok {
				pathOrder = append(pathOrder, e.Path)
			}
			byPath[e.Path] = append(byPath[e.Path], indexedError{idx: i, msg: e.Message})
		}
	}

	var out []ValidationError
	for _, p := range pathOrder {
		group := byPath[p]
		seen := make(map[string]bool, len(group))
		var deduped []indexedError
		for _, ie := range group {
			if seen[ie.msg] {
				continue
			}
			seen[ie.msg] = true
			deduped = append(deduped, ie)
		}

		if len(deduped) == 1 {
			out = append(out, ValidationError{Path: p, Message: deduped[0].msg})
			continue
		}

		if coalesced, ok := coalesceExpectedGot(deduped); ok {
			out = append(out, ValidationError{Path: p, Message: coalesced})
			continue
		}

		for _, ie := range deduped {
			out = append(out, ValidationError{Path: p, Message: fmt.Sprintf("[%d] %s", ie.idx, ie.msg)})
		}
	}
	return out
}

func coalesceExpectedGot(group []indexedError) (string, bool) {
	var expectedParts []string
	var got string
	for i, ie := range group {
		m := expectedGotPattern.FindStringSubmatch(ie.msg)
		if m == nil {
			return "", false
		}
		if i == 0 {
			got = m[2]
		} else if m[2] != got {
			return "", false
		}
		expectedParts = append(expectedParts, m[1])
	}
	return fmt.Sprintf("Expected %s - got %s.", strings.Join(expectedParts, ", "), got), true
}
