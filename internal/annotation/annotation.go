package annotation

import (
	"strings"

	"github.com/specialistvlad/enforcetyping/internal/registry"
)

// Annotation is the type constraint attached to one parameter or to the
// return position. The set of implementations is closed.
type Annotation interface {
	String() string
	annotation()
}

// Plain is a direct reference to a builtin or user type.
type Plain struct {
	Type *registry.Type
}

// Parameterized is a container declaration with ordered sub-annotations.
type Parameterized struct {
	Kind registry.Kind
	Args []Annotation
}

// Textual is an annotation stored as source text.
type Textual string

func (Plain) annotation()         {}
func (Parameterized) annotation() {}
func (Textual) annotation()       {}

// String returns the type name.
func (p Plain) String() string {
	return p.Type.Name()
}

// String renders the container with its sub-annotations, e.g. "dict[str, int]".
func (p Parameterized) String() string {
	args := make([]string, len(p.Args))
	for i, arg := range p.Args {
		args[i] = arg.String()
	}
	return containerName(p.Kind) + "[" + strings.Join(args, ", ") + "]"
}

// String returns the raw text.
func (t Textual) String() string {
	return string(t)
}

// Of returns the Plain annotation of a type descriptor.
func Of(t *registry.Type) Plain {
	return Plain{Type: t}
}

// Text returns a Textual annotation.
func Text(s string) Textual {
	return Textual(s)
}

// Dict declares a mapping with the given key and value annotations.
func Dict(key, value Annotation) Parameterized {
	return Parameterized{Kind: registry.KindMapping, Args: []Annotation{key, value}}
}

// List declares a sequence whose every element matches elem.
func List(elem Annotation) Parameterized {
	return Parameterized{Kind: registry.KindSequence, Args: []Annotation{elem}}
}

// Tuple declares a fixed-size tuple matched positionally.
func Tuple(elems ...Annotation) Parameterized {
	return Parameterized{Kind: registry.KindTuple, Args: elems}
}

// Arity returns the number of sub-annotations a container kind takes, or -1
// when any number is allowed.
func Arity(kind registry.Kind) int {
	switch kind {
	case registry.KindMapping:
		return 2
	case registry.KindSequence:
		return 1
	}
	return -1
}

func containerName(kind registry.Kind) string {
	switch kind {
	case registry.KindMapping:
		return "dict"
	case registry.KindSequence:
		return "list"
	case registry.KindTuple:
		return "tuple"
	}
	return kind.String()
}

// containerKind maps a container name, in any case, to its kind.
func containerKind(name string) (registry.Kind, bool) {
	switch strings.ToLower(name) {
	case "dict":
		return registry.KindMapping, true
	case "list":
		return registry.KindSequence, true
	case "tuple":
		return registry.KindTuple, true
	}
	return registry.KindConcrete, false
}
