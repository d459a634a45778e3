package stdlib

import (
	"fmt"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

func registerStd(r *patlib.Registry) {
	// print(format, args...)
	r.Register(nsStd, "print", patlib.MoreThan(0), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		msg, err := renderFormat(args)
		if err != nil {
			return nil, err
		}
		ctx.Log(patlib.LevelInfo, msg)
		return nil, nil
	})

	// format(format, args...)
	r.Register(nsStd, "format", patlib.MoreThan(0), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		msg, err := renderFormat(args)
		if err != nil {
			return nil, err
		}
		return literal.String(msg), nil
	})

	// env(name)
	r.Register(nsStd, "env", patlib.Exactly(1), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		name, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		value, ok := ctx.EnvVariable(name)
		if !ok {
			// the one read path that soft-fails instead of aborting
			ctx.Log(patlib.LevelWarning, fmt.Sprintf("environment variable '%s' does not exist", name))
			return literal.String(""), nil
		}
		return literal.String(value), nil
	})

	// sizeof_pack(...)
	r.Register(nsStd, "sizeof_pack", patlib.AtLeast(0), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		return literal.U64(uint64(len(args))), nil
	})

	// error(message)
	r.Register(nsStd, "error", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		msg, err := patlib.ToString(args[0], true)
		if err != nil {
			return nil, err
		}
		return nil, patlib.Abortf("%s", msg)
	})

	// warning(message)
	r.Register(nsStd, "warning", patlib.Exactly(1), func(ctx patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		msg, err := patlib.ToString(args[0], true)
		if err != nil {
			return nil, err
		}
		ctx.Log(patlib.LevelWarning, msg)
		return nil, nil
	})
}
