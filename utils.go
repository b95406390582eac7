package jsonschema4

import (
	"net/url"
	"strings"
)

// getURLScheme extracts the scheme component of a URL string, used by the
// loader to pick file/http/data handling (spec §4.1).
func getURLScheme(urlStr string) string {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return parsedURL.Scheme
}

// resolveRelativeURI resolves a relative URI against a base URI, used when
// a $ref is relative to the document that contains it.
func resolveRelativeURI(baseURI, relativeURL string) string {
	if isAbsoluteURI(relativeURL) {
		return relativeURL
	}
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return relativeURL
	}
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	return base.ResolveReference(rel).String()
}

// isAbsoluteURI checks if the given URL is absolute.
func isAbsoluteURI(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// splitRef separates a $ref string into its base URI and fragment/anchor parts.
func splitRef(ref string) (baseURI string, anchor string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}

// canonicalizeNamespace strips the fragment and any port from a namespace
// URI before it is used as a document cache key (spec §3 invariant: "cache
// keys are canonicalized: the fragment and port are stripped").
func canonicalizeNamespace(namespace string) string {
	base, _ := splitRef(namespace)
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if u.Port() != "" {
		u.Host = u.Hostname()
	}
	return u.String()
}
