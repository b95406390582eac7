package jsonschema4

import (
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolver implements spec §4.2: a post-order walk over a raw schema tree
// that replaces every $ref node with its resolved target, memoizing by
// normalized reference so that cyclic schemas close onto a shared,
// identity-preserving placeholder instead of recursing forever.
type resolver struct {
	loader *documentLoader
	cfg    *Config
	memo   map[string]*Value
}

func newResolver(cfg *Config) *resolver {
	return &resolver{
		loader: newDocumentLoader(cfg),
		cfg:    cfg,
		memo:   make(map[string]*Value),
	}
}

// resolveDocument resolves src (read via the document loader) into a
// self-contained tree containing no $ref keys.
func (r *resolver) resolveDocument(src string) (*Value, error) {
	doc, err := r.loader.load(src)
	if err != nil {
		return nil, err
	}
	return r.resolveNode(doc.Root, doc.Namespace)
}

// resolveBytes resolves an in-memory document (e.g. supplied directly by
// the caller as a native value) using namespace as its $ref base.
func (r *resolver) resolveBytes(root *Value, namespace string) (*Value, error) {
	if namespace == "" {
		namespace = "http://generated.json.validator.url#"
	}
	id := schemaID(root)
	if id == "" {
		id = namespace
		setSchemaID(root, id)
	}
	doc := &Document{Root: root, Namespace: canonicalizeNamespace(namespace)}
	r.loader.byNamespace[doc.Namespace] = doc
	r.loader.byID[canonicalizeNamespace(id)] = doc
	return r.resolveNode(root, doc.Namespace)
}

func (r *resolver) resolveNode(node *Value, namespace string) (*Value, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind() {
	case KindArray:
		items := node.Array()
		out := make([]*Value, len(items))
		for i, item := range items {
			resolved, err := r.resolveNode(item, namespace)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return ArrayValue(out), nil
	case KindObject:
		obj := node.Object()
		if refVal, ok := obj.Get("$ref"); ok && refVal.Kind() == KindString {
			return r.resolveRef(refVal.String(), namespace)
		}
		out := NewOrderedMap()
		for _, k := range obj.Keys() {
			v, _ := obj.Get(k)
			resolved, err := r.resolveNode(v, namespace)
			if err != nil {
				return nil, err
			}
			out.Set(k, resolved)
		}
		return ObjectValue(out), nil
	default:
		return node, nil
	}
}

// resolveRef implements the install-before-recurse algorithm from spec
// §4.2 step 3.
func (r *resolver) resolveRef(ref string, namespace string) (*Value, error) {
	canonical := r.normalizeRef(ref, namespace)

	if placeholder, ok := r.memo[canonical]; ok {
		return placeholder, nil
	}

	placeholder := ObjectValue(NewOrderedMap())
	r.memo[canonical] = placeholder

	baseURI, fragment := splitRef(canonical)
	if baseURI == "" {
		baseURI = namespace
	}

	doc, err := r.loader.load(baseURI)
	if err != nil {
		return nil, &ResolveError{Ref: ref, Namespace: namespace, Cause: err}
	}

	target, err := navigatePointer(doc.Root, fragment)
	if err != nil {
		return nil, &ResolveError{Ref: ref, Namespace: namespace, Cause: err}
	}

	resolvedTarget, err := r.resolveNode(target, doc.Namespace)
	if err != nil {
		return nil, err
	}
	if resolvedTarget == nil || resolvedTarget.Kind() != KindObject {
		return resolvedTarget, nil
	}

	// Copy resolved keys into placeholder (in place, so earlier holders of
	// the placeholder pointer observe the fill-in) and strip "id": it
	// belonged to the source document, not this position (spec §4.2 step 4).
	for _, k := range resolvedTarget.Object().Keys() {
		if k == "id" {
			continue
		}
		v, _ := resolvedTarget.Object().Get(k)
		placeholder.Object().Set(k, v)
	}
	return placeholder, nil
}

// normalizeRef implements spec §4.2 step 1: bare-word -> #/definitions/Name,
// fragment -> attach to namespace, absolute URI stays.
func (r *resolver) normalizeRef(ref string, namespace string) string {
	if ref == "" {
		return canonicalizeNamespace(namespace)
	}
	if strings.HasPrefix(ref, "#") {
		base, _ := splitRef(namespace)
		return base + ref
	}
	if isAbsoluteURI(ref) {
		return ref
	}
	if !strings.ContainsAny(ref, "/#") {
		base, _ := splitRef(namespace)
		return base + "#/definitions/" + ref
	}
	base, _ := splitRef(namespace)
	path, frag := splitRef(ref)
	resolvedPath := resolveRelativeURI(base, path)
	if frag != "" {
		return resolvedPath + "#" + frag
	}
	return resolvedPath
}

// navigatePointer walks a raw (pre-resolution) Value tree by an RFC 6901
// JSON pointer fragment (already stripped of its leading "#").
func navigatePointer(root *Value, fragment string) (*Value, error) {
	if fragment == "" {
		return root, nil
	}
	tokens, err := jsonpointer.Parse("/" + strings.TrimPrefix(fragment, "/"))
	if err != nil {
		return nil, ErrPointerNotFound
	}
	cur := root
	for _, tok := range tokens {
		switch cur.Kind() {
		case KindObject:
			v, ok := cur.Object().Get(tok)
			if !ok {
				return nil, ErrPointerNotFound
			}
			cur = v
		case KindArray:
			idx, convErr := parsePointerIndex(tok)
			if convErr != nil || idx < 0 || idx >= len(cur.Array()) {
				return nil, ErrPointerNotFound
			}
			cur = cur.Array()[idx]
		default:
			return nil, ErrPointerNotFound
		}
	}
	return cur, nil
}

func parsePointerIndex(tok string) (int, error) {
	n := 0
	if tok == "" {
		return 0, ErrPointerNotFound
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, ErrPointerNotFound
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
