package jsonschema4

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Document is a schema document as ingested: its root node plus the
// namespace URI used both as the $ref resolution base and the document
// cache key (spec §3 "Schema document").
type Document struct {
	Root      *Value
	Namespace string
}

// documentLoader implements spec §4.1: fetch raw bytes from file/http/data
// schemes, detect JSON vs YAML, parse to a generic Value tree, and cache by
// both canonical namespace and declared id.
type documentLoader struct {
	cfg         *Config
	byNamespace map[string]*Document
	byID        map[string]*Document
}

func newDocumentLoader(cfg *Config) *documentLoader {
	return &documentLoader{
		cfg:         cfg,
		byNamespace: make(map[string]*Document),
		byID:        make(map[string]*Document),
	}
}

// load fetches and parses the document named by url, returning the cached
// copy if this namespace (or a previously loaded document claiming the
// same id) was already loaded.
func (l *documentLoader) load(url string) (*Document, error) {
	ns := canonicalizeNamespace(url)
	if doc, ok := l.byNamespace[ns]; ok {
		return doc, nil
	}
	if doc, ok := l.byID[ns]; ok {
		return doc, nil
	}

	body, err := l.fetch(url)
	if err != nil {
		return nil, &LoadError{URL: url, Cause: err}
	}

	root, err := parseDocumentBody(body)
	if err != nil {
		le := &LoadError{URL: url, Cause: err}
		if l.cfg.Debug {
			le.RawBody = string(body)
		}
		return nil, le
	}

	id := schemaID(root)
	if id == "" {
		id = "http://generated.json.validator.url#"
		setSchemaID(root, id)
	}

	doc := &Document{Root: root, Namespace: ns}
	l.byNamespace[ns] = doc
	l.byID[canonicalizeNamespace(id)] = doc
	l.cfg.tracef("loaded document %s (id=%s)", url, id)
	return doc, nil
}

func (l *documentLoader) fetch(url string) ([]byte, error) {
	scheme := getURLScheme(url)
	loader, ok := l.cfg.Loaders[scheme]
	if !ok {
		return nil, ErrNoLoaderForScheme
	}
	if scheme != "http" && scheme != "https" {
		return loader(url)
	}
	if body, ok := l.readCache(url); ok {
		l.cfg.tracef("cache hit for %s", url)
		return body, nil
	}
	body, err := loader(url)
	if err != nil {
		return nil, err
	}
	l.writeCache(url, body)
	return body, nil
}

func (l *documentLoader) cachePath(url string) string {
	sum := md5.Sum([]byte(canonicalizeNamespace(url)))
	return filepath.Join(l.cfg.CacheDir, hex.EncodeToString(sum[:]))
}

func (l *documentLoader) readCache(url string) ([]byte, bool) {
	if l.cfg.CacheDir == "" {
		return nil, false
	}
	body, err := os.ReadFile(l.cachePath(url))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (l *documentLoader) writeCache(url string, body []byte) {
	if l.cfg.CacheDir == "" {
		return
	}
	if err := os.MkdirAll(l.cfg.CacheDir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(l.cachePath(url), body, 0o644)
}

// parseDocumentBody inspects the first non-whitespace byte of body to
// choose JSON or YAML parsing (spec §4.1).
func parseDocumentBody(body []byte) (*Value, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrUnparseableDocument
	}
	if trimmed[0] == '{' {
		v, err := DecodeJSON(bytes.NewReader(body))
		if err != nil {
			return nil, ErrUnparseableDocument
		}
		return v, nil
	}
	return decodeYAML(body)
}

// decodeYAML parses body via goccy/go-yaml's ordered-map mode so that
// object key order survives, mirroring DecodeJSON's guarantee.
func decodeYAML(body []byte) (*Value, error) {
	var generic interface{}
	if err := yaml.UnmarshalWithOptions(body, &generic, yaml.UseOrderedMap()); err != nil {
		return nil, ErrUnparseableDocument
	}
	return valueFromYAML(generic), nil
}

func valueFromYAML(x interface{}) *Value {
	switch t := x.(type) {
	case nil:
		return NullValue()
	case bool:
		return BoolValue(t)
	case string:
		return StringValue(t)
	case int:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case uint64:
		return IntValue(int64(t))
	case float64:
		return FloatValue(t)
	case yaml.MapSlice:
		m := NewOrderedMap()
		for _, item := range t {
			key, _ := item.Key.(string)
			m.Set(key, valueFromYAML(item.Value))
		}
		return ObjectValue(m)
	case []interface{}:
		items := make([]*Value, len(t))
		for i, e := range t {
			items[i] = valueFromYAML(e)
		}
		return ArrayValue(items)
	default:
		return FromNative(x)
	}
}

// schemaID and setSchemaID read/write the "id" key on a schema document's
// root mapping (spec §3: "the document's id is used as the canonical key
// in the document cache").
func schemaID(root *Value) string {
	if root == nil || root.Kind() != KindObject {
		return ""
	}
	if v, ok := root.Object().Get("id"); ok && v.Kind() == KindString {
		return v.String()
	}
	return ""
}

func setSchemaID(root *Value, id string) {
	if root == nil || root.Kind() != KindObject {
		return
	}
	root.Object().Set("id", StringValue(id))
}
