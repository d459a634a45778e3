package patlib

import (
	"strings"

	"github.com/patlang/patlib/literal"
)

// Callable is a builtin function implementation. A nil returned Value means
// "no value": the function exists for its side effect only. That is distinct
// from every falsy literal.
type Callable func(ctx EvaluationContext, args []literal.Value) (literal.Value, error)

// Function describes one registered builtin.
type Function struct {
	Namespace []string
	Name      string
	Params    ParamCount
	Trust     Trust
	Call      Callable
}

// FullName returns the dot-joined namespace path and name.
func (f *Function) FullName() string {
	return qualifiedName(f.Namespace, f.Name)
}

func qualifiedName(ns []string, name string) string {
	if len(ns) == 0 {
		return name
	}
	return strings.Join(ns, ".") + "." + name
}

// Registry maps (namespace path, name) to function descriptors. It is built
// once during initialization, before any evaluation begins, and is read-only
// afterwards; dispatch therefore needs no synchronization.
type Registry struct {
	funcs          map[string]*Function
	allowDangerous func(*Function) bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDangerousGate installs the host's permission check for dangerous
// functions. The gate runs on every dispatch to a dangerous function, before
// the implementation; returning false aborts the call with no effect
// executed. The default gate denies everything.
func WithDangerousGate(gate func(*Function) bool) RegistryOption {
	return func(r *Registry) {
		r.allowDangerous = gate
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		funcs:          make(map[string]*Function),
		allowDangerous: func(*Function) bool { return false },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a standard-tier function. Registering a name twice within a
// namespace is a programming error and panics; registration strictly
// precedes evaluation.
func (r *Registry) Register(ns []string, name string, pc ParamCount, call Callable) {
	r.register(ns, name, pc, Standard, call)
}

// RegisterDangerous adds a dangerous-tier function. It shares the table with
// Register; the tier only changes the permission check at dispatch.
func (r *Registry) RegisterDangerous(ns []string, name string, pc ParamCount, call Callable) {
	r.register(ns, name, pc, Dangerous, call)
}

func (r *Registry) register(ns []string, name string, pc ParamCount, trust Trust, call Callable) {
	// the dot is the namespace separator; a segment or name containing one
	// would alias a different registration path under the same key
	for _, seg := range ns {
		if seg == "" || strings.Contains(seg, ".") {
			panic("invalid namespace segment: '" + seg + "'")
		}
	}
	if name == "" || strings.Contains(name, ".") {
		panic("invalid function name: '" + name + "'")
	}
	key := qualifiedName(ns, name)
	if _, ok := r.funcs[key]; ok {
		panic("repeating function name: '" + key + "'")
	}
	r.funcs[key] = &Function{
		Namespace: append([]string(nil), ns...),
		Name:      name,
		Params:    pc,
		Trust:     trust,
		Call:      call,
	}
}

// Lookup returns the descriptor registered under the namespace path and name.
func (r *Registry) Lookup(ns []string, name string) (*Function, bool) {
	f, ok := r.funcs[qualifiedName(ns, name)]
	return f, ok
}

// Names returns the qualified names of all registered functions, unordered.
func (r *Registry) Names() []string {
	ret := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		ret = append(ret, name)
	}
	return ret
}

// Invoke dispatches one builtin call: resolves the descriptor, validates the
// argument count, enforces the dangerous-function gate and runs the
// implementation. Panics inside the implementation come back as errors.
// A nil returned Value with a nil error is the void return.
func (r *Registry) Invoke(ctx EvaluationContext, ns []string, name string, args []literal.Value) (literal.Value, error) {
	f, ok := r.Lookup(ns, name)
	if !ok {
		return nil, Abortf("call to unknown function '%s'", qualifiedName(ns, name))
	}
	if !f.Params.Ok(len(args)) {
		return nil, Abortf("function '%s' expects %s, got %d", f.FullName(), f.Params, len(args))
	}
	if f.Trust == Dangerous && !r.allowDangerous(f) {
		return nil, Abortf("calling dangerous function '%s' is not allowed", f.FullName())
	}

	var ret literal.Value
	err := CatchPanicOrError(func() error {
		var err error
		ret, err = f.Call(ctx, args)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
