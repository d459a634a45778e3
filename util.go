package patlib

import (
	"bytes"
	"fmt"
)

// CatchPanicOrError runs f and converts a panic into an ordinary error.
// The registry wraps every builtin invocation with it so that a panicking
// implementation still surfaces through the abort channel.
func CatchPanicOrError(f func() error) error {
	var err error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}()
		err = f()
	}()
	return err
}

// Concat concatenates byte slices.
func Concat(data ...[]byte) []byte {
	var buf bytes.Buffer
	for _, d := range data {
		buf.Write(d)
	}
	return buf.Bytes()
}
