package stdlib

import (
	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

// maxReadSize is the widest memory read expressible as a literal: 16 bytes,
// the full 128-bit integer width.
const maxReadSize = 16

func registerMem(r *patlib.Registry) {
	// base_address()
	r.Register(nsStdMem, "base_address", patlib.None(), func(ctx patlib.EvaluationContext, _ []literal.Value) (literal.Value, error) {
		return literal.U64(ctx.DataBaseAddress()), nil
	})

	// size()
	r.Register(nsStdMem, "size", patlib.None(), func(ctx patlib.EvaluationContext, _ []literal.Value) (literal.Value, error) {
		return literal.U64(ctx.DataSize()), nil
	})

	// find_sequence_in_range(occurrence_index, start_offset, end_offset, bytes...)
	r.Register(nsStdMem, "find_sequence_in_range", patlib.MoreThan(3), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		occurrence, err := patlib.ToUint64(args[0])
		if err != nil {
			return nil, err
		}
		offsetFrom, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		offsetTo, err := patlib.ToUint64(args[2])
		if err != nil {
			return nil, err
		}

		sequence := make([]byte, 0, len(args)-3)
		for i, a := range args[3:] {
			b, err := patlib.ToUnsigned(a)
			if err != nil {
				return nil, err
			}
			if b.Uint128().Cmp64(0xFF) > 0 {
				return nil, patlib.Abortf("byte #%d value out of range: %s > 0xFF", i+3, b)
			}
			sequence = append(sequence, byte(b.Uint64()))
		}

		return findSequence(ctx, occurrence, offsetFrom, offsetTo, sequence), nil
	})

	// read_unsigned(address, size)
	r.Register(nsStdMem, "read_unsigned", patlib.Exactly(2), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		buf, err := readRaw(ctx, args)
		if err != nil {
			return nil, err
		}
		return literal.DecodeUnsigned(buf), nil
	})

	// read_signed(address, size)
	r.Register(nsStdMem, "read_signed", patlib.Exactly(2), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		buf, err := readRaw(ctx, args)
		if err != nil {
			return nil, err
		}
		return literal.DecodeSigned(buf), nil
	})

	// read_string(address, size)
	r.Register(nsStdMem, "read_string", patlib.Exactly(2), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		address, err := patlib.ToUint64(args[0])
		if err != nil {
			return nil, err
		}
		size, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size)
		ctx.ReadData(address, buf)
		return literal.String(buf), nil
	})
}

// readRaw handles the shared (address, size) prologue of the integer reads,
// including the size ceiling.
func readRaw(ctx patlib.EvaluationContext, args []literal.Value) ([]byte, error) {
	address, err := patlib.ToUint64(args[0])
	if err != nil {
		return nil, err
	}
	size, err := patlib.ToUint64(args[1])
	if err != nil {
		return nil, err
	}
	if size > maxReadSize {
		return nil, patlib.Abortf("read size out of range")
	}
	buf := make([]byte, size)
	ctx.ReadData(address, buf)
	return buf, nil
}
