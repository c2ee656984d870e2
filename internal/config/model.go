package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of every loaded
// manifest: the declared packages, the function signatures and the calls
// to validate against them.
type Model struct {
	Packages  map[string]*Package
	Functions map[string]*Function
	Calls     []*Call
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		Packages:  make(map[string]*Package),
		Functions: make(map[string]*Function),
	}
}

// Class finds a class declared by any package by its qualified name.
func (m *Model) Class(qualified string) (*Package, *Class, bool) {
	for _, p := range m.Packages {
		for _, c := range p.Classes {
			if p.Path+"."+c.Name == qualified {
				return p, c, true
			}
		}
	}
	return nil, nil, false
}

// --- Type declarations ---

// Package is a dotted namespace of classes, loaded lazily by the registry.
type Package struct {
	Path    string
	Classes []*Class
}

// Class is a user class declared in a manifest.
type Class struct {
	Name string
	// Extends is the qualified name of the base class, if any.
	Extends    string
	Attributes []*Attribute
}

// QualifiedName returns the class name prefixed by its package path.
func (c *Class) QualifiedName(p *Package) string {
	return p.Path + "." + c.Name
}

// Attribute is a single typed field of a class.
type Attribute struct {
	Name string
	// Type is a builtin scalar type name: str, int, float or bool.
	Type string
}

// --- Signatures and calls ---

// Function is a declared signature. Annotations are kept in their textual
// form; an empty string means the position is not annotated.
type Function struct {
	Name    string
	Params  []*Param
	Returns string
}

// Param is one positional parameter of a Function.
type Param struct {
	Name string
	Type string
}

// Call is one invocation to validate against a Function.
type Call struct {
	Function string
	// Location is the source position of the call, for reporting.
	Location string

	// Args evaluates to either an object of keyword arguments or a list of
	// positional arguments.
	Args hcl.Expression
	// Result is the value the invocation produces.
	Result hcl.Expression
	// ExpectError, when set, expects validation to fail with a message
	// containing it.
	ExpectError string
}
