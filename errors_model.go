package jsonschema4

import (
	"fmt"
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// ValidationError is a single data-level validation failure: a JSON
// pointer naming the offending location plus a human-readable reason
// (spec §3 "Error", §4.7).
type ValidationError struct {
	Path    string
	Message string
}

// Error implements the error interface as "<path>: <message>" (spec §4.7).
func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}

// String is an alias for Error, for contexts that prefer Stringer.
func (e ValidationError) String() string { return e.Error() }

// path accumulates JSON-pointer segments during the recursive descent. The
// root path is "/" per spec §4.7; appended segments are escaped with
// jsonpointer so that "~" and "/" inside property names round-trip.
type path struct {
	segments []string
}

func rootPath() path { return path{} }

func (p path) child(segment string) path {
	next := make([]string, len(p.segments)+1)
	copy(next, p.segments)
	next[len(p.segments)] = segment
	return path{segments: next}
}

func (p path) index(i int) path {
	return p.child(strconv.Itoa(i))
}

// String renders the JSON pointer. jsonpointer.Format already escapes each
// segment and prefixes the result with "/"; the root (no segments) case is
// special-cased to "/" per spec §4.7.
func (p path) String() string {
	if len(p.segments) == 0 {
		return "/"
	}
	return jsonpointer.Format(p.segments...)
}

func newError(p path, format string, args ...any) ValidationError {
	return ValidationError{Path: p.String(), Message: fmt.Sprintf(format, args...)}
}
