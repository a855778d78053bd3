package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// Type names a forced coercion for a metadata key, overriding automatic
// inference.
type Type string

const (
	TypeStr  Type = "str"
	TypeInt  Type = "int"
	TypeBool Type = "bool"
)

// ParseType validates a type-override name from configuration.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeStr, TypeInt, TypeBool:
		return t, nil
	default:
		return "", fmt.Errorf("unknown type %q, must be one of: str, int, bool", s)
	}
}

// Coerce converts a raw metadata value into a typed Value. The value is
// stripped of surrounding whitespace before any shape check.
//
// Automatic inference precedence: all-digits → int, case-insensitive
// true/false → bool, otherwise string. An override of "str" always wins.
// Overrides of "int" or "bool" force the parse and fall back to the
// stripped string when the value does not have the required shape.
func Coerce(raw string, override Type) Value {
	v := strings.TrimSpace(raw)

	switch override {
	case TypeStr:
		return Str(v)
	case TypeInt:
		if n, err := strconv.Atoi(v); err == nil && isDigits(v) {
			return Int(n)
		}
		return Str(v)
	case TypeBool:
		if b, ok := parseBool(v); ok {
			return Bool(b)
		}
		return Str(v)
	}

	if isDigits(v) {
		n, err := strconv.Atoi(v)
		if err == nil {
			return Int(n)
		}
	}
	if b, ok := parseBool(v); ok {
		return Bool(b)
	}
	return Str(v)
}

// isDigits reports whether s is non-empty and consists only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseBool accepts only literal true/false, case-insensitive. Wider
// spellings like "yes" or "1" are deliberately not booleans here: "1" must
// coerce to an integer and "yes" must stay a string.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
