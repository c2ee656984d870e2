package registry

import "reflect"

// builtinSet keeps direct pointers to the builtin descriptors so runtime type
// lookups do not need the name map.
type builtinSet struct {
	none    *Type
	object  *Type
	integer *Type
	float   *Type
	complex *Type
	str     *Type
	boolean *Type
	bytes   *Type
	dict    *Type
	list    *Type
	tuple   *Type
}

var (
	tupleGoType = reflect.TypeOf(Tuple(nil))
	bytesGoType = reflect.TypeOf([]byte(nil))
)

func (r *Registry) installBuiltins() {
	add := func(name string, kind Kind, goType reflect.Type) *Type {
		t := &Type{name: name, kind: kind, goType: goType}
		r.byName[name] = t
		return t
	}

	r.builtins = builtinSet{
		none:    add("None", KindNone, nil),
		object:  add("object", KindObject, nil),
		integer: add("int", KindConcrete, reflect.TypeOf(0)),
		float:   add("float", KindConcrete, reflect.TypeOf(0.0)),
		complex: add("complex", KindConcrete, reflect.TypeOf(complex128(0))),
		str:     add("str", KindConcrete, reflect.TypeOf("")),
		boolean: add("bool", KindConcrete, reflect.TypeOf(false)),
		bytes:   add("bytes", KindConcrete, bytesGoType),
		dict:    add("dict", KindMapping, reflect.TypeOf(map[any]any(nil))),
		list:    add("list", KindSequence, reflect.TypeOf([]any(nil))),
		tuple:   add("tuple", KindTuple, tupleGoType),
	}
}

// Builtin returns the builtin descriptor with the given name, e.g. "int".
// It panics for names that are not builtins.
func (r *Registry) Builtin(name string) *Type {
	switch name {
	case "None":
		return r.builtins.none
	case "object":
		return r.builtins.object
	case "int":
		return r.builtins.integer
	case "float":
		return r.builtins.float
	case "complex":
		return r.builtins.complex
	case "str":
		return r.builtins.str
	case "bool":
		return r.builtins.boolean
	case "bytes":
		return r.builtins.bytes
	case "dict":
		return r.builtins.dict
	case "list":
		return r.builtins.list
	case "tuple":
		return r.builtins.tuple
	}
	panic("registry: unknown builtin type " + name)
}

// Container returns the concrete container descriptor for a container kind.
func (r *Registry) Container(kind Kind) (*Type, bool) {
	switch kind {
	case KindMapping:
		return r.builtins.dict, true
	case KindSequence:
		return r.builtins.list, true
	case KindTuple:
		return r.builtins.tuple, true
	}
	return nil, false
}
