package jsonschema4

import (
	"errors"
	"fmt"
)

// Ingestion-time sentinel errors (spec §7), wrapped into LoadError or
// ResolveError rather than returned bare, so callers can match with
// errors.Is while still getting a location-bearing message.
var (
	ErrNoLoaderForScheme   = errors.New("no loader registered for scheme")
	ErrUnreadableDocument  = errors.New("document could not be read")
	ErrUnparseableDocument = errors.New("document could not be parsed as JSON or YAML")
	ErrYAMLBackendMissing  = errors.New("no YAML backend available")
	ErrEmbeddedNotFound    = errors.New("embedded resource not found")
	ErrHTTPClientMissing   = errors.New("no HTTP client configured for http(s) scheme")
	ErrBadStatusCode       = errors.New("unexpected HTTP status code")

	ErrPointerNotFound    = errors.New("json pointer does not name a location in the target document")
	ErrRefCycleUnresolved = errors.New("reference cycle could not be closed")

	ErrUnsupportedTypeForRat = errors.New("value cannot be converted to a rational number")
	ErrFailedToConvertToRat  = errors.New("value could not be parsed as a rational number")

	ErrIPv6AddressNotEnclosed = errors.New("ipv6 host address must be enclosed in brackets")
	ErrInvalidIPv6Address     = errors.New("invalid ipv6 address")
)

// LoadError is returned by the document loader (spec §4.1) when a schema
// source cannot be fetched or parsed.
type LoadError struct {
	URL     string
	Cause   error
	RawBody string // populated only when Config.Debug is set
}

func (e *LoadError) Error() string {
	if e.RawBody != "" {
		return fmt.Sprintf("load %s: %v (body: %s)", e.URL, e.Cause, e.RawBody)
	}
	return fmt.Sprintf("load %s: %v", e.URL, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ResolveError is returned by the reference resolver (spec §4.2) when a
// $ref target cannot be loaded, or the fragment names a location that does
// not exist in the target document.
type ResolveError struct {
	Ref       string
	Namespace string
	Cause     error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %q against %q: %v", e.Ref, e.Namespace, e.Cause)
}

func (e *ResolveError) Unwrap() error { return e.Cause }
