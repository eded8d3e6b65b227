package menu

import "fmt"

// Registry holds the tools declared for one administrator type, in declaration
// order. It is meant to be filled once during package initialization.
type Registry[A any] struct {
	tools []Tool[A]
	names map[string]struct{}
}

func NewRegistry[A any]() *Registry[A] {
	return &Registry[A]{names: make(map[string]struct{})}
}

// Add registers t and returns the registry for chaining. An invalid declaration
// panics: it is a programming error in the administrator, not a runtime condition.
func (r *Registry[A]) Add(t Tool[A]) *Registry[A] {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	if _, ok := r.names[t.Name]; ok {
		panic(fmt.Errorf("%w: %q", ErrDuplicateTool, t.Name))
	}
	r.names[t.Name] = struct{}{}
	r.tools = append(r.tools, t)
	return r
}

// Tools returns a copy of the declared tools in declaration order.
func (r *Registry[A]) Tools() []Tool[A] {
	res := make([]Tool[A], len(r.tools))
	copy(res, r.tools)
	return res
}

func (r *Registry[A]) Len() int {
	return len(r.tools)
}
