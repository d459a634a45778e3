package stdlib

import (
	"math"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

// The std.math namespace: pure float64 functions with standard
// double-precision transcendental semantics. The only failure path is
// argument coercion.

func registerMath(r *patlib.Registry) {
	unary := []struct {
		name string
		fn   func(float64) float64
	}{
		{"floor", math.Floor},
		{"ceil", math.Ceil},
		{"round", math.Round},
		{"trunc", math.Trunc},
		{"log10", math.Log10},
		{"log2", math.Log2},
		{"ln", math.Log},
		{"sqrt", math.Sqrt},
		{"cbrt", math.Cbrt},
		{"sin", math.Sin},
		{"cos", math.Cos},
		{"tan", math.Tan},
		{"asin", math.Asin},
		{"acos", math.Acos},
		{"atan", math.Atan},
		{"sinh", math.Sinh},
		{"cosh", math.Cosh},
		{"tanh", math.Tanh},
		{"asinh", math.Asinh},
		{"acosh", math.Acosh},
		{"atanh", math.Atanh},
	}
	for _, m := range unary {
		fn := m.fn
		r.Register(nsStdMath, m.name, patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
			x, err := patlib.ToFloat(args[0])
			if err != nil {
				return nil, err
			}
			return literal.F64(fn(x)), nil
		})
	}

	binary := []struct {
		name string
		fn   func(float64, float64) float64
	}{
		{"fmod", math.Mod},
		{"pow", math.Pow},
		{"atan2", math.Atan2},
	}
	for _, m := range binary {
		fn := m.fn
		r.Register(nsStdMath, m.name, patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
			x, err := patlib.ToFloat(args[0])
			if err != nil {
				return nil, err
			}
			y, err := patlib.ToFloat(args[1])
			if err != nil {
				return nil, err
			}
			return literal.F64(fn(x, y)), nil
		})
	}
}
