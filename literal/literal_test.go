package literal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestRender(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		require.EqualValues(t, "0", U64(0).String())
		require.EqualValues(t, "18446744073709551615", U64(math.MaxUint64).String())
		require.EqualValues(t, "340282366920938463463374607431768211455", U128(uint128.Max).String())
	})
	t.Run("signed", func(t *testing.T) {
		require.EqualValues(t, "0", S64(0).String())
		require.EqualValues(t, "-1", S64(-1).String())
		require.EqualValues(t, "-9223372036854775808", S64(math.MinInt64).String())
		require.EqualValues(t, "9223372036854775807", S64(math.MaxInt64).String())
	})
	t.Run("float", func(t *testing.T) {
		require.EqualValues(t, "1.5", F64(1.5).String())
		require.EqualValues(t, "-0.25", F64(-0.25).String())
	})
}

func TestSignedInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 255, -32768, math.MaxInt64, math.MinInt64} {
		require.EqualValues(t, v, S64(v).Int64())
	}
	require.True(t, S64(-1).IsNeg())
	require.False(t, S64(1).IsNeg())
}

func TestDecodeUnsigned(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		v := DecodeUnsigned([]byte{0x78, 0x56, 0x34, 0x12})
		require.EqualValues(t, uint64(0x12345678), v.Uint64())
	})
	t.Run("missing high bytes read as zero", func(t *testing.T) {
		require.EqualValues(t, uint64(0xFF), DecodeUnsigned([]byte{0xFF}).Uint64())
	})
	t.Run("full width", func(t *testing.T) {
		var buf [16]byte
		for i := range buf {
			buf[i] = 0xFF
		}
		require.True(t, DecodeUnsigned(buf[:]).Uint128().Equals(uint128.Max))
	})
}

// fits reports whether v is representable in n*8 two's-complement bits.
func fits(v int64, n int) bool {
	if n >= 8 {
		return true
	}
	bound := int64(1) << uint(8*n-1)
	return v >= -bound && v < bound
}

func TestSignExtendRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, -2, 127, -128, 128, -129, 255, -255,
		32767, -32768, 123456789, -987654321,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
	}
	var buf [16]byte
	for _, v := range values {
		S64(v).Uint128().PutBytes(buf[:])
		for n := 1; n <= 16; n++ {
			if !fits(v, n) {
				continue
			}
			got := DecodeSigned(buf[:n])
			require.EqualValues(t, S64(v), got, "value %d over %d byte(s)", v, n)
		}
	}
}

func TestSignExtendBits(t *testing.T) {
	t.Run("positive stays positive", func(t *testing.T) {
		v := SignExtend(uint128.From64(0x7F), 1)
		require.True(t, v.Equals(uint128.From64(0x7F)))
	})
	t.Run("negative widens", func(t *testing.T) {
		v := SignExtend(uint128.From64(0xFF), 1)
		require.True(t, v.Equals(uint128.Max))
	})
	t.Run("garbage above the width is masked", func(t *testing.T) {
		v := SignExtend(uint128.From64(0xAB_0001), 2)
		require.True(t, v.Equals(uint128.From64(1)))
	})
	t.Run("full width unchanged", func(t *testing.T) {
		require.True(t, SignExtend(uint128.Max, 16).Equals(uint128.Max))
	})
}

func TestTypeName(t *testing.T) {
	require.EqualValues(t, "unsigned integer", TypeName(U64(1)))
	require.EqualValues(t, "signed integer", TypeName(S64(1)))
	require.EqualValues(t, "floating point", TypeName(F64(1)))
	require.EqualValues(t, "boolean", TypeName(Bool(true)))
	require.EqualValues(t, "character", TypeName(Char('a')))
	require.EqualValues(t, "string", TypeName(String("")))
	require.EqualValues(t, "no value", TypeName(nil))
}
