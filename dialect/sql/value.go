package sql

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the type carried by a Value.
type ValueKind uint8

// Value kinds. The zero kind marks an invalid Value.
const (
	KindInvalid ValueKind = iota
	KindText
	KindInteger
	KindReal
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return "invalid"
	}
}

// Value is a typed literal used in value rows and conditions.
//
// Values reach the storage engine as bound arguments (see Value.Arg). Their
// literal rendering (see Value.String) exists for diagnostics only.
type Value struct {
	kind ValueKind
	text string
	i    int64
	f    float64
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Integer returns an integer value.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Real returns a real (floating point) value.
func Real(f float64) Value { return Value{kind: KindReal, f: f} }

// ValueOf converts a Go value into a Value.
// Strings map to Text, all integer types to Integer and floats to Real.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case string:
		return Text(v), nil
	case int:
		return Integer(int64(v)), nil
	case int8:
		return Integer(int64(v)), nil
	case int16:
		return Integer(int64(v)), nil
	case int32:
		return Integer(int64(v)), nil
	case int64:
		return Integer(v), nil
	case uint8:
		return Integer(int64(v)), nil
	case uint16:
		return Integer(int64(v)), nil
	case uint32:
		return Integer(int64(v)), nil
	case float32:
		return Real(float64(v)), nil
	case float64:
		return Real(v), nil
	default:
		return Value{}, fmt.Errorf("dialect/sql: unsupported value type %T", v)
	}
}

// Kind returns the type tag of the value.
func (v Value) Kind() ValueKind { return v.kind }

// Valid reports whether the value carries a type tag. NaN and infinite reals
// have no SQL literal and are not valid.
func (v Value) Valid() bool {
	switch v.kind {
	case KindInvalid:
		return false
	case KindReal:
		return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
	}
	return true
}

// Arg returns the value in the form passed to database/sql as a bound argument.
func (v Value) Arg() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return v.i
	case KindReal:
		return v.f
	default:
		return nil
	}
}

// String returns the literal SQL rendering of the value.
// Text is single-quoted with embedded quotes and backslashes escaped; numbers
// use their shortest decimal form, so Real(25000) renders as 25000.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return "'" + escapeStringValue(v.text) + "'"
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return "<invalid>"
	}
}

// escapeStringValue escapes a string value for display inside a quoted literal.
// It escapes both single quotes (by doubling) and backslashes (for MySQL compatibility).
func escapeStringValue(s string) string {
	// Fast path: if no escaping needed, return as-is
	if !strings.ContainsAny(s, `'\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return s
}
