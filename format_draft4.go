package jsonschema4

import (
	"math"
	"regexp"

	"golang.org/x/net/idna"
)

// byteFormatPattern matches the base64 alphabet used by the "byte" format
// (spec §4.4): RFC 4648 characters only, padding optional.
var byteFormatPattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// IsByte reports whether v is a string drawn from the base64 alphabet.
func IsByte(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	return byteFormatPattern.MatchString(s)
}

// IsInt32 reports whether v is a number that round-trips through a 32-bit
// signed integer representation (spec §4.4).
func IsInt32(v interface{}) bool {
	f, ok := asFloat(v)
	if !ok {
		return true
	}
	return f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32
}

// IsInt64 reports whether v is a number that round-trips through a 64-bit
// signed integer representation.
func IsInt64(v interface{}) bool {
	f, ok := asFloat(v)
	if !ok {
		return true
	}
	return f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64
}

// IsFloatFormat and IsDoubleFormat accept any number (spec §4.4: "accept
// any number"); they exist as named predicates so the format table has an
// entry to dispatch to rather than silently treating them as unknown.
func IsFloatFormat(v interface{}) bool  { return true }
func IsDoubleFormat(v interface{}) bool { return true }

func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// IsHostnameIDNA upgrades IsHostname with full IDNA/Unicode domain
// validation via golang.org/x/net/idna, matching spec §4.4's "full domain
// validation if a hostname library is available" branch. Config wires this
// in as the default hostname validator. A value the IDNA lookup profile
// converts to ASCII is accepted; otherwise the result is IsHostname's
// ASCII-only check, so a value is rejected only when both checks reject it.
func IsHostnameIDNA(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if _, err := idna.Lookup.ToASCII(s); err == nil {
		return true
	}
	return IsHostname(s)
}

// defaultFormats returns the Draft-4 built-in format table (spec §4.4):
// the predicates formats.go carries plus the numeric round-trip and
// IDNA-aware hostname formats this file adds.
func defaultFormats() map[string]func(any) bool {
	return map[string]func(any) bool{
		"byte":      IsByte,
		"date":      IsDate,
		"date-time": IsDateTime,
		"email":     IsEmail,
		"hostname":  IsHostnameIDNA,
		"ipv4":      IsIPV4,
		"ipv6":      IsIPV6,
		"uri":       IsURI,
		"int32":     IsInt32,
		"int64":     IsInt64,
		"float":     IsFloatFormat,
		"double":    IsDoubleFormat,
	}
}
