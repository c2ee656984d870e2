package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Packages  []*Package  `hcl:"package,block"`
	Functions []*Function `hcl:"function,block"`
	Calls     []*Call     `hcl:"call,block"`
	Remain    hcl.Body    `hcl:",remain"`
}

// Package represents a `package` block: a dotted namespace of classes.
type Package struct {
	Path    string   `hcl:"path,label"`
	Classes []*Class `hcl:"class,block"`
}

// Class represents a `class` block within a package.
type Class struct {
	Name       string       `hcl:"name,label"`
	Extends    string       `hcl:"extends,optional"`
	Attributes []*Attribute `hcl:"attribute,block"`
}

// Attribute represents a typed field of a class.
type Attribute struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

// Function represents a `function` block declaring a signature.
type Function struct {
	Name    string         `hcl:"name,label"`
	Params  []*Param       `hcl:"param,block"`
	Returns hcl.Expression `hcl:"returns,optional"`
}

// Param represents one positional parameter of a function.
type Param struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type,optional"`
}

// Call represents a `call` block: an invocation of a declared function.
type Call struct {
	Function    string         `hcl:"function,label"`
	Args        hcl.Expression `hcl:"args,optional"`
	Result      hcl.Expression `hcl:"result,optional"`
	ExpectError string         `hcl:"expect_error,optional"`
	DeclRange   hcl.Range      `hcl:",def_range"`
}
