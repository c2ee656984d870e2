package match

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/specialistvlad/enforcetyping/internal/annotation"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/specialistvlad/enforcetyping/internal/verdict"
)

// Matcher matches values against classified annotations, typing values
// through its Registry.
type Matcher struct {
	Registry *registry.Registry
}

// New creates a Matcher bound to a registry.
func New(reg *registry.Registry) *Matcher {
	return &Matcher{Registry: reg}
}

// Match validates value against a classified annotation. The first mismatch
// aborts the walk.
func (m *Matcher) Match(binding string, value any, a annotation.Annotation) error {
	switch v := a.(type) {
	case annotation.Plain:
		return Plain(m.Registry, binding, m.Registry.TypeOf(value), v.Type)
	case annotation.Parameterized:
		return m.Parameterized(binding, value, v)
	}
	return verdict.InvalidAnnotation(binding, fmt.Sprintf("%v", a), fmt.Errorf("annotation %T is not classified", a))
}

// Parameterized validates a container value. The value's runtime type must be
// exactly the container of p.Kind; elements must match their sub-types
// exactly, without subclassing.
func (m *Matcher) Parameterized(binding string, value any, p annotation.Parameterized) error {
	want, ok := m.Registry.Container(p.Kind)
	if !ok {
		return verdict.InvalidAnnotation(binding, p.String(), fmt.Errorf("kind %s is not a container", p.Kind))
	}
	actual := m.Registry.TypeOf(value)
	if actual != want {
		return verdict.Mismatch(binding, actual.Name(), want.Name())
	}
	if n := annotation.Arity(p.Kind); n >= 0 && len(p.Args) != n {
		return verdict.Arity(binding, p.String(), len(p.Args), n)
	}

	rv := reflect.ValueOf(value)
	switch p.Kind {
	case registry.KindMapping:
		return m.mapping(binding, rv, p.Args[0], p.Args[1])
	case registry.KindSequence:
		return m.sequence(binding, rv, p.Args[0])
	default:
		return m.tuple(binding, rv, p.Args)
	}
}

func (m *Matcher) mapping(binding string, rv reflect.Value, keyType, valueType annotation.Annotation) error {
	for _, e := range sortedEntries(rv) {
		keyOK, err := m.exact(fmt.Sprintf("%s[%v]", binding, e.key), e.key, keyType)
		if err != nil {
			return err
		}
		valueOK := false
		if keyOK {
			valueOK, err = m.exact(fmt.Sprintf("%s[%v]", binding, e.key), e.value, valueType)
			if err != nil {
				return err
			}
		}
		if !keyOK || !valueOK {
			return verdict.PairMismatch(binding,
				m.Registry.TypeOf(e.key).Name(), m.Registry.TypeOf(e.value).Name(),
				keyType.String(), valueType.String())
		}
	}
	return nil
}

func (m *Matcher) sequence(binding string, rv reflect.Value, elemType annotation.Annotation) error {
	for i := 0; i < rv.Len(); i++ {
		if err := m.element(binding, i, rv.Index(i).Interface(), elemType); err != nil {
			return err
		}
	}
	return nil
}

func (m *Matcher) tuple(binding string, rv reflect.Value, elemTypes []annotation.Annotation) error {
	if rv.Len() != len(elemTypes) {
		return verdict.LengthMismatch(binding, rv.Len(), len(elemTypes))
	}
	for i, elemType := range elemTypes {
		if err := m.element(binding, i, rv.Index(i).Interface(), elemType); err != nil {
			return err
		}
	}
	return nil
}

func (m *Matcher) element(binding string, index int, elem any, want annotation.Annotation) error {
	ok, err := m.exact(fmt.Sprintf("%s[%d]", binding, index), elem, want)
	if err != nil {
		return err
	}
	if !ok {
		return verdict.IndexMismatch(binding, index, m.Registry.TypeOf(elem).Name(), want.String())
	}
	return nil
}

// exact reports whether elem's runtime type is exactly the one declared. A
// nested container declaration is then walked under the child binding name.
func (m *Matcher) exact(binding string, elem any, want annotation.Annotation) (bool, error) {
	actual := m.Registry.TypeOf(elem)
	switch w := want.(type) {
	case annotation.Plain:
		return actual == w.Type, nil
	case annotation.Parameterized:
		container, ok := m.Registry.Container(w.Kind)
		if !ok || actual != container {
			return false, nil
		}
		return true, m.Parameterized(binding, elem, w)
	}
	return false, verdict.InvalidAnnotation(binding, fmt.Sprintf("%v", want), fmt.Errorf("annotation %T is not classified", want))
}

type entry struct {
	key   any
	value any
	order string
}

// sortedEntries returns the map entries ordered by their formatted key, so
// the first reported mismatch does not depend on map iteration order.
func sortedEntries(rv reflect.Value) []entry {
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		entries = append(entries, entry{
			key:   k,
			value: iter.Value().Interface(),
			order: fmt.Sprintf("%v\x00%T", k, k),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })
	return entries
}
