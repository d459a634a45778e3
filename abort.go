package patlib

import (
	"errors"
	"fmt"
)

// AbortError terminates the current builtin call and propagates to the
// evaluator, which surfaces the message to the script author. It carries a
// human-readable message and nothing else.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return e.Msg }

// Abortf raises an evaluation abort with a formatted message.
func Abortf(format string, args ...interface{}) error {
	return &AbortError{Msg: fmt.Sprintf(format, args...)}
}

// IsAbort reports whether err is an evaluation abort.
func IsAbort(err error) bool {
	var a *AbortError
	return errors.As(err, &a)
}
