package literal

import (
	"math"

	"lukechampine.com/uint128"
)

// 128-bit two's-complement helpers shared by the signed literal and the
// memory-read decoders. Byte order for raw memory reads is little-endian,
// the native order of the data the host exposes.

func isNeg(v uint128.Uint128) bool {
	return v.Hi>>63 == 1
}

func neg(v uint128.Uint128) uint128.Uint128 {
	return v.Xor(uint128.Max).AddWrap64(1)
}

func lowMask(bits uint) uint128.Uint128 {
	return uint128.Max.Rsh(128 - bits)
}

func u128ToFloat(v uint128.Uint128) float64 {
	return math.Ldexp(float64(v.Hi), 64) + float64(v.Lo)
}

// SignExtend widens the low nbytes*8 bits of v to a 128-bit two's-complement
// value. nbytes outside [1,15] returns v unchanged.
func SignExtend(v uint128.Uint128, nbytes int) uint128.Uint128 {
	if nbytes <= 0 || nbytes >= 16 {
		return v
	}
	bits := uint(nbytes * 8)
	if v.Rsh(bits - 1).And64(1).IsZero() {
		return v.And(lowMask(bits))
	}
	return v.Or(uint128.Max.Lsh(bits))
}

// DecodeUnsigned interprets up to 16 little-endian bytes as an unsigned
// 128-bit value. Missing high bytes read as zero.
func DecodeUnsigned(b []byte) Unsigned {
	var buf [16]byte
	copy(buf[:], b)
	return Unsigned(uint128.FromBytes(buf[:]))
}

// DecodeSigned interprets len(b) little-endian bytes as a signed value and
// sign-extends len(b)*8 bits to the full width.
func DecodeSigned(b []byte) Signed {
	u := DecodeUnsigned(b)
	return Signed(SignExtend(uint128.Uint128(u), len(b)))
}
