// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
)

// returnKey is the binding name reserved for the return value.
const returnKey = "return"

// attributeTypes are the scalar types a class attribute may hold.
var attributeTypes = map[string]bool{"str": true, "int": true, "float": true, "bool": true}

// translatePackage converts the HCL-specific package schema into the agnostic model.
func (l *Loader) translatePackage(ctx context.Context, s *Package) (*config.Package, error) {
	logger := ctxlog.FromContext(ctx).With("package", s.Path)
	logger.Debug("Translating HCL package to internal config model.", "classes", len(s.Classes))

	p := &config.Package{Path: s.Path}
	seen := make(map[string]bool)
	for _, c := range s.Classes {
		if seen[c.Name] {
			return nil, fmt.Errorf("in package '%s': class '%s' is declared more than once", s.Path, c.Name)
		}
		seen[c.Name] = true

		class := &config.Class{Name: c.Name, Extends: c.Extends}
		attrs := make(map[string]bool)
		for _, a := range c.Attributes {
			if attrs[a.Name] {
				return nil, fmt.Errorf("in class '%s.%s': attribute '%s' is declared more than once", s.Path, c.Name, a.Name)
			}
			attrs[a.Name] = true

			typ, err := typeExprToText(ctx, a.Type, "type")
			if err != nil {
				return nil, fmt.Errorf("in class '%s.%s', attribute '%s': %w", s.Path, c.Name, a.Name, err)
			}
			if !attributeTypes[typ] {
				return nil, fmt.Errorf("in class '%s.%s', attribute '%s': type must be one of str, int, float or bool, got %q", s.Path, c.Name, a.Name, typ)
			}
			class.Attributes = append(class.Attributes, &config.Attribute{Name: a.Name, Type: typ})
		}
		p.Classes = append(p.Classes, class)
	}
	return p, nil
}

// translateFunction converts the HCL-specific function schema into the agnostic model.
func (l *Loader) translateFunction(ctx context.Context, s *Function) (*config.Function, error) {
	logger := ctxlog.FromContext(ctx).With("function", s.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL function to internal config model.", "params", len(s.Params))

	f := &config.Function{Name: s.Name}
	seen := make(map[string]bool)
	for _, p := range s.Params {
		if seen[p.Name] {
			return nil, fmt.Errorf("in function '%s': parameter '%s' is declared more than once", s.Name, p.Name)
		}
		seen[p.Name] = true
		if p.Name == returnKey {
			return nil, fmt.Errorf("in function '%s': '%s' is reserved for the return value", s.Name, returnKey)
		}

		typ, err := typeExprToText(ctx, p.Type, "type")
		if err != nil {
			return nil, fmt.Errorf("in function '%s', parameter '%s': %w", s.Name, p.Name, err)
		}
		f.Params = append(f.Params, &config.Param{Name: p.Name, Type: typ})
	}

	returns, err := typeExprToText(ctx, s.Returns, "returns")
	if err != nil {
		return nil, fmt.Errorf("in function '%s', returns: %w", s.Name, err)
	}
	f.Returns = returns
	return f, nil
}

// translateCall converts the HCL-specific call schema into the agnostic
// model. Its expressions are evaluated later, once the registry is populated.
func (l *Loader) translateCall(s *Call) *config.Call {
	return &config.Call{
		Function:    s.Function,
		Location:    location(s.DeclRange),
		Args:        s.Args,
		Result:      s.Result,
		ExpectError: s.ExpectError,
	}
}
