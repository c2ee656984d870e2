package registry

import "reflect"

// Kind classifies a type descriptor by the matching strategy it needs.
type Kind int

const (
	// KindConcrete is any scalar, user class or otherwise opaque Go type.
	KindConcrete Kind = iota
	// KindNone is the type of the untyped nil value.
	KindNone
	// KindObject is the root type every other type is a subclass of.
	KindObject
	// KindMapping is the dict container.
	KindMapping
	// KindSequence is the list container.
	KindSequence
	// KindTuple is the fixed-size tuple container.
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindConcrete:
		return "concrete"
	case KindNone:
		return "none"
	case KindObject:
		return "object"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// IsContainer reports whether the kind can carry sub-type arguments.
func (k Kind) IsContainer() bool {
	return k == KindMapping || k == KindSequence || k == KindTuple
}

// Type is an interned type descriptor.
type Type struct {
	name   string
	kind   Kind
	goType reflect.Type
	base   *Type
	// embeds lists the struct types embedded by goType. They are matched
	// against the registry when subclassing is checked, so the order in
	// which types are registered does not matter.
	embeds []reflect.Type
	// adhoc marks descriptors interned for unregistered Go types.
	adhoc bool
}

// Name returns the qualified name of the type, e.g. "app.models.User".
func (t *Type) Name() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// String implements fmt.Stringer.
func (t *Type) String() string { return t.Name() }

// Kind returns the matching kind of the type.
func (t *Type) Kind() Kind { return t.kind }

// GoType returns the Go type backing the descriptor. It is nil for None and object.
func (t *Type) GoType() reflect.Type { return t.goType }

// Base returns the explicit base class given to RegisterClass, or nil.
// Bases derived from embedded structs are found by Registry.IsSubclass.
func (t *Type) Base() *Type { return t.base }

// IsRegistered reports whether the type is a builtin or was registered by
// name, as opposed to interned on first sight of an unregistered Go type.
func (t *Type) IsRegistered() bool { return !t.adhoc }

// Tuple is the Go representation of a fixed-size tuple value. A plain []any
// is a list; converting it to Tuple changes its runtime type.
type Tuple []any

// NewTuple builds a Tuple from its items.
func NewTuple(items ...any) Tuple {
	return Tuple(items)
}
