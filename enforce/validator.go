package enforce

import (
	"context"
	"sort"

	"github.com/specialistvlad/enforcetyping/internal/annotation"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/match"
	"github.com/specialistvlad/enforcetyping/internal/registry"
)

// Config holds the configuration of a Validator.
type Config struct {
	// Registry resolves textual annotations. A registry with only the
	// builtins is used when nil.
	Registry *Registry
	// Strict rejects annotations that cannot be interpreted instead of
	// skipping their validation.
	Strict bool
}

// Validator checks bindings against declared annotations. It holds no
// per-invocation state and is safe for concurrent use.
type Validator struct {
	registry   *registry.Registry
	classifier *annotation.Classifier
	matcher    *match.Matcher
}

// New creates a Validator.
func New(cfg Config) *Validator {
	reg := cfg.Registry
	if reg == nil {
		reg = registry.New()
	}
	return &Validator{
		registry:   reg,
		classifier: &annotation.Classifier{Registry: reg, Strict: cfg.Strict},
		matcher:    match.New(reg),
	}
}

// Registry returns the registry the validator resolves names with.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// ValidateArguments validates every bound argument that has a declared
// annotation, in name order. The return annotation is ignored.
func (v *Validator) ValidateArguments(ctx context.Context, binding Binding, declared Declared) error {
	names := make([]string, 0, len(binding))
	for name := range binding {
		if name == ReturnKey {
			continue
		}
		if _, ok := declared[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := v.Check(ctx, name, binding[name], declared[name]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateReturn validates the produced value against the declared return
// annotation. It is a no-op when no return annotation is declared.
func (v *Validator) ValidateReturn(ctx context.Context, declared Declared, produced any) error {
	a, ok := declared[ReturnKey]
	if !ok {
		return nil
	}
	return v.Check(ctx, ReturnKey, produced, a)
}

// Check validates a single binding.
func (v *Validator) Check(ctx context.Context, name string, value any, a Annotation) error {
	logger := ctxlog.FromContext(ctx).With("binding", name)

	classified, ok, err := v.classifier.Classify(ctx, name, a)
	if err != nil {
		return err
	}
	if !ok {
		logger.Debug("No constraint to enforce.")
		return nil
	}

	if err := v.matcher.Match(name, value, classified); err != nil {
		logger.Debug("Binding does not conform.", "annotation", classified.String(), "error", err)
		return err
	}
	logger.Debug("Binding conforms.", "annotation", classified.String())
	return nil
}
