package patlib

import "fmt"

type arityKind uint8

const (
	arityNone arityKind = iota
	arityExactly
	arityAtLeast
	arityMoreThan
)

// ParamCount is the closed argument-count constraint of a function.
// The evaluator validates the incoming argument count against it before
// dispatch; implementations may assume validation already happened.
type ParamCount struct {
	kind arityKind
	n    int
}

// None accepts exactly zero arguments.
func None() ParamCount { return ParamCount{kind: arityNone} }

// Exactly accepts exactly n arguments.
func Exactly(n int) ParamCount { return ParamCount{kind: arityExactly, n: n} }

// AtLeast accepts n or more arguments.
func AtLeast(n int) ParamCount { return ParamCount{kind: arityAtLeast, n: n} }

// MoreThan accepts n+1 or more arguments.
func MoreThan(n int) ParamCount { return ParamCount{kind: arityMoreThan, n: n} }

// Ok reports whether argc satisfies the constraint.
func (p ParamCount) Ok(argc int) bool {
	switch p.kind {
	case arityNone:
		return argc == 0
	case arityExactly:
		return argc == p.n
	case arityAtLeast:
		return argc >= p.n
	case arityMoreThan:
		return argc > p.n
	}
	return false
}

func (p ParamCount) String() string {
	switch p.kind {
	case arityNone:
		return "no arguments"
	case arityExactly:
		return fmt.Sprintf("exactly %d argument(s)", p.n)
	case arityAtLeast:
		return fmt.Sprintf("at least %d argument(s)", p.n)
	case arityMoreThan:
		return fmt.Sprintf("more than %d argument(s)", p.n)
	}
	return "unknown constraint"
}

// Trust is the tier of a function. Dangerous functions additionally require
// the host to have granted permission before the evaluator may dispatch to
// them; the registry enforces the gate before invocation.
type Trust uint8

const (
	Standard Trust = iota
	Dangerous
)

func (t Trust) String() string {
	if t == Dangerous {
		return "dangerous"
	}
	return "standard"
}
