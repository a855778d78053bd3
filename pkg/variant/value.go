// Package variant provides the typed values stored in host variable maps.
// Consul node metadata is stringly typed on the wire; the inventory exposes
// it to the automation layer as strings, integers, or booleans.
package variant

import "encoding/json"

// Kind identifies the concrete type held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

// Value is a tagged variant holding exactly one of string, int, or bool.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	s    string
	i    int
	b    bool
}

// Str creates a string Value.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int creates an integer Value.
func Int(i int) Value {
	return Value{kind: KindInt, i: i}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the concrete type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Any returns the held value as its native Go type.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	default:
		return v.s
	}
}

// MarshalJSON emits the native scalar, not the variant envelope.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// MarshalYAML emits the native scalar, mirroring MarshalJSON.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}
