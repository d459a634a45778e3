package stdlib

import (
	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

func (l *Library) registerHTTP(r *patlib.Registry) {
	// get(url)
	r.RegisterDangerous(nsStdHTTP, "get", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		url, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		body, err := l.net.GetString(url)
		if err != nil {
			return nil, patlib.Abortf("failed to fetch %s: %v", url, err)
		}
		return literal.String(body), nil
	})
}
