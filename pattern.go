package jsonschema4

import "regexp"

// evaluatePattern checks an unanchored regex match against the host regex
// engine (spec §4.3 string validator).
func evaluatePattern(re *regexp.Regexp, raw string, s string, p path) *ValidationError {
	if re == nil {
		return nil
	}
	if re.MatchString(s) {
		return nil
	}
	e := newError(p, "String does not match '%s'", raw)
	return &e
}

// patternCompiler compiles and caches "pattern" regexes keyed by schema
// node identity. A fresh one is created for each Validate call, so it is
// never shared between calls or between Validator instances.
type patternCompiler struct {
	cache map[*Value]*regexp.Regexp
}

func newPatternCompiler() *patternCompiler {
	return &patternCompiler{cache: make(map[*Value]*regexp.Regexp)}
}

func (pc *patternCompiler) compile(node *Value, raw string) *regexp.Regexp {
	if re, ok := pc.cache[node]; ok {
		return re
	}
	re, err := regexp.Compile(raw)
	if err != nil {
		pc.cache[node] = nil
		return nil
	}
	pc.cache[node] = re
	return re
}
