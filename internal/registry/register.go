package registry

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/specialistvlad/enforcetyping/internal/typeref"
)

// RegisterType registers a Go type under a qualified name. Pointer types
// are registered by their element type. A struct embedding another
// registered struct is a subclass of it, whichever is registered first.
//
// Registration is a startup concern: duplicate names or types panic.
func (r *Registry) RegisterType(qualified string, goType reflect.Type) *Type {
	if goType == nil {
		panic(fmt.Sprintf("type '%s' registered with a nil Go type", qualified))
	}
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}
	return r.register(qualified, goType, nil)
}

// RegisterClass registers a type with an explicit base class. It is used for
// classes built at runtime, whose Go struct does not embed its base.
func (r *Registry) RegisterClass(qualified string, goType reflect.Type, base *Type) *Type {
	if goType == nil {
		panic(fmt.Sprintf("class '%s' registered with a nil Go type", qualified))
	}
	return r.register(qualified, goType, base)
}

// RegisterPackage registers a lazily loaded package under a dotted path.
func (r *Registry) RegisterPackage(path string, m Module) {
	if _, err := typeref.Parse(path); err != nil {
		panic(fmt.Sprintf("invalid package path '%s': %v", path, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.packages[path]; exists {
		panic(fmt.Sprintf("package '%s' already registered", path))
	}
	slog.Debug("Registering package.", "path", path)
	r.packages[path] = &pkg{module: m}
}

func (r *Registry) register(qualified string, goType reflect.Type, base *Type) *Type {
	if _, err := typeref.Parse(qualified); err != nil {
		panic(fmt.Sprintf("invalid type name '%s': %v", qualified, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[qualified]; exists {
		panic(fmt.Sprintf("type with name '%s' already registered", qualified))
	}
	if existing, exists := r.byGo[goType]; exists && !existing.adhoc {
		panic(fmt.Sprintf("Go type %s already registered as '%s'", goType, existing.name))
	}

	t := &Type{name: qualified, kind: KindConcrete, goType: goType, base: base, embeds: embeddedStructs(goType)}
	r.byName[qualified] = t
	r.byGo[goType] = t
	slog.Debug("Registering type.", "name", qualified, "go_type", goType.String(), "base", base.Name())
	return t
}

// embeddedStructs returns the struct types of the anonymous fields of
// goType, pointers dereferenced.
func embeddedStructs(goType reflect.Type) []reflect.Type {
	if goType.Kind() != reflect.Struct {
		return nil
	}

	var embeds []reflect.Type
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.Anonymous {
			continue
		}
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			embeds = append(embeds, ft)
		}
	}
	return embeds
}
