package patlib

import (
	"github.com/patlang/patlib/literal"
)

// Literal coercions. Each conversion is total within its accepted variants
// and raises an evaluation abort otherwise; no conversion returns an error
// code of its own.

// ToUnsigned converts v to an unsigned 128-bit magnitude. Signed inputs are
// reinterpreted through their two's-complement bit pattern widened to 128
// bits, not clamped and not made absolute.
func ToUnsigned(v literal.Value) (literal.Unsigned, error) {
	switch x := v.(type) {
	case literal.Unsigned:
		return x, nil
	case literal.Signed:
		return x.Unsigned(), nil
	case literal.Bool:
		if x {
			return literal.U64(1), nil
		}
		return literal.U64(0), nil
	case literal.Char:
		return literal.U64(uint64(x)), nil
	}
	return literal.U64(0), Abortf("expected an integer value, got %s", literal.TypeName(v))
}

// ToSigned converts v to a signed 128-bit value.
func ToSigned(v literal.Value) (literal.Signed, error) {
	switch x := v.(type) {
	case literal.Signed:
		return x, nil
	case literal.Unsigned:
		return literal.S128(x.Uint128()), nil
	case literal.Bool:
		if x {
			return literal.S64(1), nil
		}
		return literal.S64(0), nil
	case literal.Char:
		return literal.S64(int64(x)), nil
	}
	return literal.S64(0), Abortf("expected an integer value, got %s", literal.TypeName(v))
}

// ToFloat widens any numeric variant to a 64-bit float.
func ToFloat(v literal.Value) (float64, error) {
	switch x := v.(type) {
	case literal.Float:
		return float64(x), nil
	case literal.Unsigned:
		return x.Float64(), nil
	case literal.Signed:
		return x.Float64(), nil
	case literal.Bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case literal.Char:
		return float64(x), nil
	}
	return 0, Abortf("expected a numeric value, got %s", literal.TypeName(v))
}

// ToString returns v as a string. A String passes through unchanged. With
// coerceNonString set, any other variant renders: integers in base-10
// decimal, patterns through their rendering capability. Without it, a
// non-string input aborts with a type mismatch.
func ToString(v literal.Value, coerceNonString bool) (string, error) {
	if s, ok := v.(literal.String); ok {
		return string(s), nil
	}
	if !coerceNonString {
		return "", Abortf("expected a string value, got %s", literal.TypeName(v))
	}
	switch x := v.(type) {
	case literal.Unsigned:
		return x.String(), nil
	case literal.Signed:
		return x.String(), nil
	case literal.Float:
		return x.String(), nil
	case literal.Bool:
		if x {
			return "true", nil
		}
		return "false", nil
	case literal.Char:
		return string(x), nil
	case literal.Pattern:
		return x.Ref.ToString(), nil
	}
	return "", Abortf("cannot render %s as a string", literal.TypeName(v))
}

// ToUint64 converts like ToUnsigned and truncates to 64 bits, the width of
// host addresses, offsets and sizes.
func ToUint64(v literal.Value) (uint64, error) {
	u, err := ToUnsigned(v)
	if err != nil {
		return 0, err
	}
	return u.Uint64(), nil
}

// ToInt64 converts like ToSigned and truncates to 64 bits.
func ToInt64(v literal.Value) (int64, error) {
	s, err := ToSigned(v)
	if err != nil {
		return 0, err
	}
	return s.Int64(), nil
}
