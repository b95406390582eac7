package jsonschema4

// evaluateUniqueItems checks that no two elements of items are
// structurally equal under the canonical hasher (spec §4.6: "1 and "1"
// hash differently even though their digit sequence is the same").
func evaluateUniqueItems(items []*Value, p path) *ValidationError {
	seen := make(map[uint64][]*Value, len(items))
	for _, item := range items {
		h := CanonicalHash(item)
		for _, other := range seen[h] {
			if ValuesEqual(item, other) {
				e := newError(p, "Unique items required.")
				return &e
			}
		}
		seen[h] = append(seen[h], item)
	}
	return nil
}
