package registry

import "reflect"

// TypeOf returns the runtime type of a value. Registered Go types win over
// the kind-based builtin mapping, so a registered `type Email string` is not
// a str. Pointers to structs are typed by their element, and a nil pointer
// of any type is None.
func (r *Registry) TypeOf(v any) *Type {
	if v == nil {
		return r.builtins.none
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return r.builtins.none
	}
	return r.typeOfGo(reflect.TypeOf(v))
}

func (r *Registry) typeOfGo(goType reflect.Type) *Type {
	if goType == tupleGoType {
		return r.builtins.tuple
	}
	if goType.Kind() == reflect.Ptr && goType.Elem().Kind() == reflect.Struct {
		goType = goType.Elem()
	}

	r.mu.RLock()
	t, ok := r.byGo[goType]
	r.mu.RUnlock()
	if ok {
		return t
	}

	switch goType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return r.builtins.integer
	case reflect.Float32, reflect.Float64:
		return r.builtins.float
	case reflect.Complex64, reflect.Complex128:
		return r.builtins.complex
	case reflect.String:
		return r.builtins.str
	case reflect.Bool:
		return r.builtins.boolean
	case reflect.Slice:
		if goType.Elem().Kind() == reflect.Uint8 {
			return r.builtins.bytes
		}
		return r.builtins.list
	case reflect.Array:
		return r.builtins.list
	case reflect.Map:
		return r.builtins.dict
	}

	return r.intern(goType)
}

// intern returns the ad-hoc descriptor of an unregistered Go type, creating
// it on first sight.
func (r *Registry) intern(goType reflect.Type) *Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.byGo[goType]; ok {
		return t
	}
	t := &Type{name: goType.String(), kind: KindConcrete, goType: goType, embeds: embeddedStructs(goType), adhoc: true}
	r.byGo[goType] = t
	return t
}

// IsSubclass reports whether sub is super, a class derived from super, or
// whether super is object. A class derives from its explicit base and from
// every struct it embeds, directly or through unregistered structs.
// Embedded structs are looked up when the question is asked, so the answer
// does not depend on registration or package load order.
func (r *Registry) IsSubclass(sub, super *Type) bool {
	if sub == nil || super == nil {
		return false
	}
	if super.kind == KindObject {
		return true
	}

	seen := make(map[*Type]bool)
	seenGo := make(map[reflect.Type]bool)
	for queue := []*Type{sub}; len(queue) > 0; {
		t := queue[0]
		queue = queue[1:]
		if t == super {
			return true
		}
		if seen[t] {
			continue
		}
		seen[t] = true

		if t.base != nil {
			queue = append(queue, t.base)
		}
		for _, goType := range t.embeds {
			if seenGo[goType] {
				continue
			}
			seenGo[goType] = true
			queue = append(queue, r.embedded(goType))
		}
	}
	return false
}

// embedded returns the descriptor known for an embedded struct type, or a
// transient one that is never interned.
func (r *Registry) embedded(goType reflect.Type) *Type {
	r.mu.RLock()
	t, ok := r.byGo[goType]
	r.mu.RUnlock()
	if ok {
		return t
	}
	return &Type{name: goType.String(), kind: KindConcrete, goType: goType, embeds: embeddedStructs(goType), adhoc: true}
}
