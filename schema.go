package jsonschema4

// Ingest resolves the schema document named by source (a file path, an
// http(s) URL, or a "data://" embedded-resource reference) into a
// self-contained Value tree with every $ref replaced by its target (spec
// §4.1, §4.2).
func Ingest(source string, cfg *Config) (*Value, error) {
	return newResolver(cfg).resolveDocument(source)
}

// IngestValue resolves an in-memory schema tree (e.g. built by the caller
// via FromNative or decoded ad hoc) using namespace as the $ref resolution
// base, the same way Ingest resolves a document fetched from a URL.
func IngestValue(root *Value, namespace string, cfg *Config) (*Value, error) {
	return newResolver(cfg).resolveBytes(root, namespace)
}
