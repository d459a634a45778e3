package stdlib

import (
	"go.uber.org/zap/zaptest/observer"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/testutil"
)

// newTestRegistry registers lib with a grant-everything dangerous gate.
// Denial scenarios build their own registry with the default gate.
func newTestRegistry(lib *Library) *patlib.Registry {
	reg := patlib.NewRegistry(patlib.WithDangerousGate(func(*patlib.Function) bool { return true }))
	lib.Register(reg)
	return reg
}

// observedContext wraps data in a BufferContext whose console records into
// an observer sink.
func observedContext(data []byte) (*patlib.BufferContext, *observer.ObservedLogs) {
	log, logs := testutil.NewObserved()
	ctx := patlib.NewBufferContext(data)
	ctx.Console = patlib.NewConsole(log)
	return ctx, logs
}
