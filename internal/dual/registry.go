package dual

import (
	"fmt"
	"sort"
)

// Func is a lifted elementary function operating on float64 duals.
type Func func(Dual[float64]) Dual[float64]

// Registry maps elementary function names to their lifted forms. It is built
// once from the derivative-rule table and is safe for concurrent reads.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates a registry populated from the derivative-rule table.
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func, len(elementaryRules)),
	}
	for _, rl := range elementaryRules {
		fn, fp := rl.fn, rl.deriv
		r.funcs[rl.name] = func(z Dual[float64]) Dual[float64] {
			return apply(z, fn, fp)
		}
	}
	return r
}

// Register adds a custom lifted function under the given name.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Get returns the lifted function for a name.
func (r *Registry) Get(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Apply evaluates the named function on z.
func (r *Registry) Apply(name string, z Dual[float64]) (Dual[float64], error) {
	fn, ok := r.funcs[name]
	if !ok {
		return Dual[float64]{}, fmt.Errorf("%w: %s", ErrUnknownFunc, name)
	}
	return fn(z), nil
}

// SupportedFuncs returns the registered function names in sorted order.
func (r *Registry) SupportedFuncs() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
