package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/trajview/internal/dynamo"
)

var registry = map[string]func() dynamo.Integrator{
	"euler":  func() dynamo.Integrator { return NewEuler() },
	"rk4":    func() dynamo.Integrator { return NewRK4() },
	"verlet": func() dynamo.Integrator { return NewVerlet() },
}

// New returns a fresh integrator by name. Integrators keep scratch buffers,
// so each simulation gets its own.
func New(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
