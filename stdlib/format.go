package stdlib

import (
	"strings"
	"text/template"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

// renderFormat renders args[0] as a text/template against the remaining
// arguments. Placeholders address arguments by position: {{index . 0}} is
// the first argument after the template. A malformed template or a
// placeholder referencing a missing argument aborts evaluation.
func renderFormat(args []literal.Value) (string, error) {
	format, err := patlib.ToString(args[0], true)
	if err != nil {
		return "", err
	}

	data := make([]interface{}, 0, len(args)-1)
	for _, a := range args[1:] {
		data = append(data, templateArg(a))
	}

	t, err := template.New("format").Parse(format)
	if err != nil {
		return "", patlib.Abortf("format error: %v", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", patlib.Abortf("format error: %v", err)
	}
	return b.String(), nil
}

// templateArg maps a literal to the native value substituted into the
// template. Patterns render through their capability up front; everything
// else passes through as-is, with 128-bit integers carrying their decimal
// Stringer.
func templateArg(v literal.Value) interface{} {
	switch x := v.(type) {
	case literal.Pattern:
		return x.Ref.ToString()
	case literal.Unsigned:
		return x
	case literal.Signed:
		return x
	case literal.Float:
		return float64(x)
	case literal.Bool:
		return bool(x)
	case literal.Char:
		return string(x)
	case literal.String:
		return string(x)
	}
	return v
}
