package registry

import (
	"reflect"
	"sort"
	"sync"
)

// Module is the interface that lazily loaded packages implement. Register is
// called at most once, the first time a name under the package is resolved.
type Module interface {
	Register(r *Registry)
}

// ModuleFunc adapts a plain function to the Module interface.
type ModuleFunc func(r *Registry)

// Register implements Module.
func (f ModuleFunc) Register(r *Registry) { f(r) }

// pkg is a registered, possibly not yet loaded, package.
type pkg struct {
	module Module
	once   sync.Once
}

// Registry holds every known type descriptor and package for a single
// validator instance.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Type
	byGo     map[reflect.Type]*Type
	packages map[string]*pkg

	builtins builtinSet
}

// New creates and initializes a new Registry populated with the builtin types.
func New() *Registry {
	r := &Registry{
		byName:   make(map[string]*Type),
		byGo:     make(map[reflect.Type]*Type),
		packages: make(map[string]*pkg),
	}
	r.installBuiltins()
	return r
}

// Lookup returns the descriptor registered under the exact qualified name,
// without loading any package.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// Names returns all registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Packages returns all registered package paths in sorted order.
func (r *Registry) Packages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.packages))
	for path := range r.packages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// NameOf returns the textual name that resolves back to t.
func (r *Registry) NameOf(t *Type) string {
	return t.Name()
}
