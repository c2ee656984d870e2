package enforce

import (
	"github.com/specialistvlad/enforcetyping/internal/annotation"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/specialistvlad/enforcetyping/internal/verdict"
)

// ReturnKey is the reserved binding name of the return value.
const ReturnKey = "return"

// Binding maps parameter names to the values supplied in one invocation.
type Binding map[string]any

// Declared maps parameter names, and ReturnKey, to their annotations.
type Declared map[string]Annotation

type (
	// Registry is the explicit type registry used to resolve textual names.
	Registry = registry.Registry
	// Type is an interned type descriptor.
	Type = registry.Type
	// Module is a lazily loaded package of types.
	Module = registry.Module
	// ModuleFunc adapts a function to Module.
	ModuleFunc = registry.ModuleFunc
	// TupleValue is the runtime representation of a fixed-size tuple.
	TupleValue = registry.Tuple

	// Annotation is a declared type constraint.
	Annotation = annotation.Annotation

	// EnforcedTypingError is the single error kind reported on mismatch.
	EnforcedTypingError = verdict.EnforcedTypingError
	// TypeResolutionError reports a textual type name that cannot be resolved.
	TypeResolutionError = registry.TypeResolutionError
)

// ErrTypeMismatch matches every EnforcedTypingError with errors.Is.
var ErrTypeMismatch = verdict.ErrTypeMismatch

// NewRegistry returns a registry holding the builtin types.
func NewRegistry() *Registry {
	return registry.New()
}

// NewTuple builds a tuple value.
func NewTuple(items ...any) TupleValue {
	return registry.NewTuple(items...)
}

// Plain annotates with a type descriptor.
func Plain(t *Type) Annotation {
	return annotation.Of(t)
}

// Text annotates with source text, resolved at validation time.
func Text(s string) Annotation {
	return annotation.Text(s)
}

// Dict annotates a mapping with key and value sub-annotations.
func Dict(key, value Annotation) Annotation {
	return annotation.Dict(key, value)
}

// List annotates a sequence with its element sub-annotation.
func List(elem Annotation) Annotation {
	return annotation.List(elem)
}

// Tuple annotates a fixed-size tuple positionally.
func Tuple(elems ...Annotation) Annotation {
	return annotation.Tuple(elems...)
}
