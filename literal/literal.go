// Package literal defines the tagged runtime value exchanged between the
// pattern language and the bridge. The union is closed: exactly the seven
// variants below exist, and consumers dispatch with exhaustive type switches.
package literal

import (
	"strconv"

	"lukechampine.com/uint128"
)

// Value is the literal union. Exactly one variant is active; conversions
// between variants are explicit and live in the bridge's coercion layer.
type Value interface {
	isLiteral()
}

// PatternRef is an opaque handle to a compound pattern value owned by the
// evaluator. The only capability it exposes to builtins is rendering.
type PatternRef interface {
	ToString() string
}

type (
	// Unsigned is a 128-bit unsigned integer.
	Unsigned uint128.Uint128

	// Signed is a 128-bit signed integer carried as its two's-complement
	// bit pattern.
	Signed uint128.Uint128

	// Float is a 64-bit floating point number.
	Float float64

	// Bool is a boolean.
	Bool bool

	// Char is a single byte character.
	Char byte

	// String is a byte string.
	String string

	// Pattern wraps a reference to a compound evaluator value.
	Pattern struct {
		Ref PatternRef
	}
)

func (Unsigned) isLiteral() {}
func (Signed) isLiteral()   {}
func (Float) isLiteral()    {}
func (Bool) isLiteral()     {}
func (Char) isLiteral()     {}
func (String) isLiteral()   {}
func (Pattern) isLiteral()  {}

// U128 wraps a raw 128-bit value.
func U128(v uint128.Uint128) Unsigned { return Unsigned(v) }

// U64 widens v to an unsigned literal.
func U64(v uint64) Unsigned { return Unsigned(uint128.From64(v)) }

// S128 wraps a raw two's-complement bit pattern.
func S128(v uint128.Uint128) Signed { return Signed(v) }

// S64 sign-extends v to a signed literal.
func S64(v int64) Signed {
	if v < 0 {
		return Signed(uint128.New(uint64(v), ^uint64(0)))
	}
	return Signed(uint128.From64(uint64(v)))
}

// F64 wraps a float literal.
func F64(v float64) Float { return Float(v) }

func (u Unsigned) Uint128() uint128.Uint128 { return uint128.Uint128(u) }

// Uint64 truncates to the low 64 bits.
func (u Unsigned) Uint64() uint64 { return uint128.Uint128(u).Lo }

func (u Unsigned) Float64() float64 { return u128ToFloat(uint128.Uint128(u)) }

// String renders the value in base-10 decimal.
func (u Unsigned) String() string { return uint128.Uint128(u).String() }

func (s Signed) Uint128() uint128.Uint128 { return uint128.Uint128(s) }

// Int64 truncates to the low 64 bits, preserving two's-complement semantics
// for values representable in 64 bits.
func (s Signed) Int64() int64 { return int64(uint128.Uint128(s).Lo) }

// IsNeg reports whether the sign bit is set.
func (s Signed) IsNeg() bool { return isNeg(uint128.Uint128(s)) }

func (s Signed) Float64() float64 {
	v := uint128.Uint128(s)
	if isNeg(v) {
		return -u128ToFloat(neg(v))
	}
	return u128ToFloat(v)
}

// Unsigned reinterprets the two's-complement bit pattern as unsigned,
// already widened to 128 bits. This is the canonical widening rule: no
// absolute value, no clamping.
func (s Signed) Unsigned() Unsigned { return Unsigned(s) }

// String renders the value in base-10 decimal with a leading minus sign for
// negative values.
func (s Signed) String() string {
	v := uint128.Uint128(s)
	if isNeg(v) {
		return "-" + neg(v).String()
	}
	return v.String()
}

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// TypeName names the active variant for diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case Unsigned:
		return "unsigned integer"
	case Signed:
		return "signed integer"
	case Float:
		return "floating point"
	case Bool:
		return "boolean"
	case Char:
		return "character"
	case String:
		return "string"
	case Pattern:
		return "pattern"
	case nil:
		return "no value"
	}
	return "unknown"
}
