package jsonschema4

import (
	"io"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind classifies a Value into one of the seven JSON Schema Draft-4 runtime
// kinds (spec §4.6's type guesser).
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged-union JSON value: null, bool, integer, float, string,
// an ordered sequence of Value, or an order-preserving string->Value
// mapping. Integers and floats are tracked separately so that a document
// round-tripped through decode/encode keeps discriminating "integer" from
// "number" the way Draft-4's type keyword requires.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []*Value
	obj  *OrderedMap
}

// OrderedMap is a string-keyed mapping that preserves insertion order for
// diagnostics while still supporting O(1) lookup.
type OrderedMap struct {
	keys   []string
	values map[string]*Value
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]*Value)}
}

// Get returns the value stored under key and whether it was present.
func (m *OrderedMap) Get(key string) (*Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, appending key to the iteration order only the
// first time it is seen.
func (m *OrderedMap) Set(key string, value *Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key from the map, preserving the relative order of the
// remaining keys.
func (m *OrderedMap) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of keys.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Constructors for literal values, used by tests and by the resolver when
// synthesizing nodes (e.g. a generated document id).

func NullValue() *Value           { return &Value{kind: KindNull} }
func BoolValue(b bool) *Value     { return &Value{kind: KindBool, b: b} }
func IntValue(i int64) *Value     { return &Value{kind: KindInteger, i: i, f: float64(i)} }
func FloatValue(f float64) *Value { return &Value{kind: KindNumber, f: f} }
func StringValue(s string) *Value { return &Value{kind: KindString, s: s} }
func ArrayValue(items []*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}
func ObjectValue(m *OrderedMap) *Value {
	if m == nil {
		m = NewOrderedMap()
	}
	return &Value{kind: KindObject, obj: m}
}

// Kind reports the runtime JSON Schema kind of the value (spec §4.6).
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool    { return v == nil || v.kind == KindNull }
func (v *Value) Bool() bool      { return v.b }
func (v *Value) Int() int64      { return v.i }
func (v *Value) Float() float64  { return v.f }
func (v *Value) String() string  { return v.s }
func (v *Value) Array() []*Value { return v.arr }
func (v *Value) Object() *OrderedMap {
	if v == nil {
		return nil
	}
	return v.obj
}

// Len reports the array length or object size; zero for scalar kinds.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// FromNative converts a Go value produced by the standard decoding path
// (map[string]any, []any, json.Number, ...) into a Value tree. It is used
// for ad-hoc data supplied by callers through the programmatic API. A Go
// map has no key order, so its keys are added in sorted order; documents
// decoded via DecodeJSON or the loader's YAML path build the tree directly
// and so keep their source key order.
func FromNative(x any) *Value {
	switch t := x.(type) {
	case nil:
		return NullValue()
	case bool:
		return BoolValue(t)
	case json.Number:
		return numberFromString(string(t))
	case string:
		return StringValue(t)
	case float64:
		return FloatValue(t)
	case float32:
		return FloatValue(float64(t))
	case int:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case []any:
		items := make([]*Value, len(t))
		for i, e := range t {
			items[i] = FromNative(e)
		}
		return ArrayValue(items)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewOrderedMap()
		for _, k := range keys {
			m.Set(k, FromNative(t[k]))
		}
		return ObjectValue(m)
	case *Value:
		return t
	default:
		return NullValue()
	}
}

// ToNative converts a Value tree back into plain Go values
// (map[string]any/[]any/...), e.g. the scalar handed to a format predicate.
func (v *Value) ToNative() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInteger:
		return v.i
	case KindNumber:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.ToNative()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.Keys() {
			val, _ := v.obj.Get(k)
			out[k] = val.ToNative()
		}
		return out
	default:
		return nil
	}
}

// DecodeJSON parses a JSON document into a Value tree, preserving object
// key order by walking the token stream rather than decoding into
// map[string]interface{} (which Go randomizes on iteration).
func DecodeJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewOrderedMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return ObjectValue(m), nil
		case '[':
			var items []*Value
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return ArrayValue(items), nil
		}
	case json.Number:
		return numberFromString(string(t)), nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	}
	return NullValue(), nil
}

func numberFromString(s string) *Value {
	isInt := true
	for i, c := range s {
		if c == '-' && i == 0 {
			continue
		}
		if c < '0' || c > '9' {
			isInt = false
			break
		}
	}
	if isInt {
		var i int64
		neg := false
		for j, c := range s {
			if c == '-' && j == 0 {
				neg = true
				continue
			}
			i = i*10 + int64(c-'0')
		}
		if neg {
			i = -i
		}
		return IntValue(i)
	}
	f, _ := strconv.ParseFloat(s, 64)
	return FloatValue(f)
}
