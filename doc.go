// Package patlib is the builtin-function bridge between an embedded
// pattern-description-language evaluator and its host, a binary analysis
// environment. The evaluator resolves script calls to registered functions,
// validates the argument count against the function's parameter constraint
// and invokes the implementation with an EvaluationContext, the facade
// through which builtins reach host memory, the console and environment
// variables.
//
// Every hard failure inside a builtin travels through one channel, the
// evaluation abort (see Abortf). Soft failures exist in exactly two places,
// documented on the stdlib functions that have them.
package patlib
