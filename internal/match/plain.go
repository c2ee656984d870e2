package match

import (
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/specialistvlad/enforcetyping/internal/verdict"
)

// Plain passes if actual is expected or a subclass of it.
func Plain(reg *registry.Registry, binding string, actual, expected *registry.Type) error {
	if reg.IsSubclass(actual, expected) {
		return nil
	}
	return verdict.Mismatch(binding, actual.Name(), expected.Name())
}
