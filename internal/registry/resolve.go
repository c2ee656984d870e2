package registry

import (
	"context"

	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/typeref"
)

// Resolve converts a textual type reference into the descriptor it denotes.
//
// For a qualified reference every registered package owning a prefix of it
// is loaded, longest prefix first, before the full name is looked up. Bare
// names are looked up among the builtins and already registered types.
func (r *Registry) Resolve(ctx context.Context, name string) (*Type, error) {
	logger := ctxlog.FromContext(ctx)

	ref, err := typeref.Parse(name)
	if err != nil {
		return nil, &TypeResolutionError{Name: name, Err: err}
	}

	for _, prefix := range ref.Prefixes() {
		if r.load(ctx, prefix) {
			break
		}
	}

	qualified := ref.String()
	if t, ok := r.Lookup(qualified); ok {
		logger.Debug("Resolved type reference.", "name", qualified, "kind", t.Kind().String())
		return t, nil
	}

	r.mu.RLock()
	_, isPackage := r.packages[qualified]
	r.mu.RUnlock()
	if isPackage {
		return nil, &TypeResolutionError{Name: name, Err: ErrNotAType}
	}
	return nil, &TypeResolutionError{Name: name, Err: ErrUnknownType}
}

// load runs the package registered at path, at most once. It reports
// whether such a package exists.
func (r *Registry) load(ctx context.Context, path string) bool {
	r.mu.RLock()
	p, ok := r.packages[path]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	p.once.Do(func() {
		ctxlog.FromContext(ctx).Debug("Loading package.", "path", path)
		p.module.Register(r)
	})
	return true
}
