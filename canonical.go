package jsonschema4

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CanonicalForm serializes a Value into a deterministic text form: object
// keys sorted lexically, strings escaped, kind-tagged scalars so that, per
// spec §8's boundary behavior, 1 (integer) and "1" (string) hash
// differently even though their digit sequence is the same. Used by the
// enum keyword and by uniqueItems (spec §4.6).
func CanonicalForm(v *Value) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

// CanonicalHash returns a fixed-size digest of v's canonical form, used for
// fast equality checks in enum/uniqueItems without repeatedly comparing
// whole strings.
func CanonicalHash(v *Value) uint64 {
	return xxhash.Sum64String(CanonicalForm(v))
}

// ValuesEqual reports whether a and b are structurally equal as Json
// values — same kind, same content, ignoring object key order.
func ValuesEqual(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	return CanonicalForm(a) == CanonicalForm(b)
}

func writeCanonical(sb *strings.Builder, v *Value) {
	if v == nil {
		sb.WriteString("n:")
		return
	}
	switch v.Kind() {
	case KindNull:
		sb.WriteString("n:")
	case KindBool:
		sb.WriteString("b:")
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case KindInteger:
		sb.WriteString("i:")
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindNumber:
		sb.WriteString("f:")
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case KindString:
		sb.WriteString("s:")
		writeEscapedString(sb, v.String())
	case KindArray:
		sb.WriteString("a:[")
		for i, item := range v.Array() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, item)
		}
		sb.WriteByte(']')
	case KindObject:
		obj := v.Object()
		keys := append([]string(nil), obj.Keys()...)
		sort.Strings(keys)
		sb.WriteString("o:{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeEscapedString(sb, k)
			sb.WriteByte(':')
			val, _ := obj.Get(k)
			writeCanonical(sb, val)
		}
		sb.WriteByte('}')
	}
}

func writeEscapedString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
