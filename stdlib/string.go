package stdlib

import (
	"strconv"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

func registerString(r *patlib.Registry) {
	// length(string)
	r.Register(nsStdString, "length", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		s, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		return literal.U64(uint64(len(s))), nil
	})

	// at(string, index). Negative indices count from the end; magnitude
	// equal to the length addresses the first character. A positive index
	// must stay below the length.
	r.Register(nsStdString, "at", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		s, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		index, err := patlib.ToInt64(args[1])
		if err != nil {
			return nil, err
		}
		n := int64(len(s))
		if index >= 0 {
			if index >= n {
				return nil, patlib.Abortf("character index out of range")
			}
			return literal.Char(s[index]), nil
		}
		if -index > n {
			return nil, patlib.Abortf("character index out of range")
		}
		return literal.Char(s[n+index]), nil
	})

	// substr(string, pos, count). count past the end clamps silently.
	r.Register(nsStdString, "substr", patlib.Exactly(3), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		s, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		pos, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		count, err := patlib.ToUint64(args[2])
		if err != nil {
			return nil, err
		}
		n := uint64(len(s))
		if pos > n {
			return nil, patlib.Abortf("character index out of range")
		}
		end := n
		if count < n-pos {
			end = pos + count
		}
		return literal.String(s[pos:end]), nil
	})

	// parse_int(string, base). Malformed input yields 0 without aborting;
	// out-of-range input saturates, strtoll-style.
	r.Register(nsStdString, "parse_int", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		s, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		base, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		value, _ := strconv.ParseInt(s, int(base), 64)
		return literal.S64(value), nil
	})

	// parse_float(string). Same soft-failure contract as parse_int.
	r.Register(nsStdString, "parse_float", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		s, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		value, _ := strconv.ParseFloat(s, 64)
		return literal.F64(value), nil
	})
}
