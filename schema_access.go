package jsonschema4

// schema_access.go centralizes reading the recognized Draft-4 keywords
// (spec §3) off a schema node's generic Value mapping. There is no typed
// Schema struct: by validation time every node is a fully resolved Value
// tree (no $ref left, per spec §3's invariant), so the dispatcher reads
// keywords directly, the way a dynamically-typed host language would.

func schemaGet(node *Value, key string) *Value {
	if node == nil || node.Kind() != KindObject {
		return nil
	}
	v, _ := node.Object().Get(key)
	return v
}

func schemaString(node *Value, key string) (string, bool) {
	v := schemaGet(node, key)
	if v == nil || v.Kind() != KindString {
		return "", false
	}
	return v.String(), true
}

func schemaBool(node *Value, key string) (bool, bool) {
	v := schemaGet(node, key)
	if v == nil || v.Kind() != KindBool {
		return false, false
	}
	return v.Bool(), true
}

func schemaInt(node *Value, key string) (int, bool) {
	v := schemaGet(node, key)
	if v == nil {
		return 0, false
	}
	switch v.Kind() {
	case KindInteger:
		return int(v.Int()), true
	case KindNumber:
		return int(v.Float()), true
	default:
		return 0, false
	}
}

func schemaRat(node *Value, key string) *Rat {
	return NewRatFromValue(schemaGet(node, key))
}

func schemaArray(node *Value, key string) []*Value {
	v := schemaGet(node, key)
	if v == nil || v.Kind() != KindArray {
		return nil
	}
	return v.Array()
}

// schemaTypes returns the normalized list of "type" strings: absent ->
// nil, single string -> one-element slice, array -> each element's
// string.
func schemaTypes(node *Value) []string {
	v := schemaGet(node, "type")
	if v == nil {
		return nil
	}
	if v.Kind() == KindString {
		return []string{v.String()}
	}
	if v.Kind() == KindArray {
		types := make([]string, 0, len(v.Array()))
		for _, item := range v.Array() {
			if item.Kind() == KindString {
				types = append(types, item.String())
			}
		}
		return types
	}
	return nil
}

func schemaStringArray(node *Value, key string) []string {
	v := schemaGet(node, key)
	if v == nil || v.Kind() != KindArray {
		return nil
	}
	out := make([]string, 0, len(v.Array()))
	for _, item := range v.Array() {
		if item.Kind() == KindString {
			out = append(out, item.String())
		}
	}
	return out
}

func schemaSchemaArray(node *Value, key string) []*Value {
	return schemaArray(node, key)
}
