package document

import (
	"encoding/json"
	"strings"
)

// Kind identifies which variant of the JSON value tree a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
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
		return "bool"
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

// Member is one key/value pair of an object, kept in source order
type Member struct {
	Key   string
	Value Value
}

// Value is a loosely-typed JSON value.
// The zero Value is null.
type Value struct {
	kind     Kind
	boolean  bool
	text     string // string contents or number literal
	elements []Value
	members  []Member
}

func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }
func String(s string) Value { return Value{kind: KindString, text: s} }
func Array(elems ...Value) Value { return Value{kind: KindArray, elements: elems} }
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: members}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind {
	return v.kind
}

// Elements returns the array elements, or nil if v is not an array
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.elements
}

// Members returns the object members in source order, or nil if v is not an object
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Lookup finds key in an object.
// Duplicate keys resolve to the last occurrence, matching common JSON decoders.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// Has reports whether key is present in an object, whatever its value
func (v Value) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// StringOr returns the display text of key, or def when key is absent
func (v Value) StringOr(key, def string) string {
	field, ok := v.Lookup(key)
	if !ok {
		return def
	}
	return field.Text()
}

// Text renders v for display.
// Strings are returned unquoted; everything else as compact JSON.
func (v Value) Text() string {
	if v.kind == KindString {
		return v.text
	}
	var sb strings.Builder
	v.writeJSON(&sb)
	return sb.String()
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	v.writeJSON(&sb)
	return []byte(sb.String()), nil
}

func (v Value) writeJSON(sb *strings.Builder) {
	switch v.kind {
	case KindBool:
		if v.boolean {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.text)
	case KindString:
		writeQuoted(sb, v.text)
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.elements {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.writeJSON(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeQuoted(sb, m.Key)
			sb.WriteByte(':')
			m.Value.writeJSON(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("null")
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	// Marshalling a plain string cannot fail
	b, _ := json.Marshal(s)
	sb.Write(b)
}
