package app

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/dag"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/specialistvlad/enforcetyping/internal/typeref"
)

// classMarkerField is the zero-size first field of every manifest class. Its
// tag carries the qualified class name, which keeps the Go types of classes
// with identical attributes distinct.
const classMarkerField = "Class_"

var attributeGoTypes = map[string]reflect.Type{
	"str":   reflect.TypeOf(""),
	"int":   reflect.TypeOf(0),
	"float": reflect.TypeOf(0.0),
	"bool":  reflect.TypeOf(false),
}

// installPackages registers every manifest package with the registry as a
// lazily loaded package. Classes are built when their package is first
// resolved, bases before the classes that extend them.
func installPackages(ctx context.Context, reg *registry.Registry, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	classes := dag.New()
	packages := dag.New()
	for _, p := range model.Packages {
		if ref, err := typeref.Parse(p.Path); err != nil || ref.String() != p.Path {
			return fmt.Errorf("invalid package path '%s'", p.Path)
		}
		packages.AddNode(p.Path)
		for _, c := range p.Classes {
			if !isIdentifier(c.Name) {
				return fmt.Errorf("invalid class name '%s' in package '%s'", c.Name, p.Path)
			}
			classes.AddNode(c.QualifiedName(p))
		}
	}

	for _, p := range model.Packages {
		for _, c := range p.Classes {
			if c.Extends == "" {
				continue
			}
			basePkg, _, ok := model.Class(c.Extends)
			if !ok {
				return fmt.Errorf("class '%s' extends unknown class '%s'", c.QualifiedName(p), c.Extends)
			}
			if err := classes.AddEdge(c.Extends, c.QualifiedName(p)); err != nil {
				return fmt.Errorf("class '%s': %w", c.QualifiedName(p), err)
			}
			if basePkg.Path != p.Path {
				if err := packages.AddEdge(basePkg.Path, p.Path); err != nil {
					return err
				}
			}
		}
	}

	order, err := classes.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("invalid class hierarchy: %w", err)
	}
	if err := packages.DetectCycles(); err != nil {
		return fmt.Errorf("packages must not extend each other's classes: %w", err)
	}

	fields := make(map[string][]reflect.StructField, len(order))
	for _, qualified := range order {
		_, c, _ := model.Class(qualified)
		f, err := classFields(qualified, c, fields)
		if err != nil {
			return err
		}
		fields[qualified] = f

		subclasses, _ := classes.Dependents(qualified)
		logger.Debug("Class declared.", "class", qualified, "attributes", len(f)-1, "subclasses", subclasses)
	}

	paths := make([]string, 0, len(model.Packages))
	for path := range model.Packages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		reg.RegisterPackage(path, packageModule(ctx, model.Packages[path], model, order, fields))
		bases, _ := packages.Dependencies(path)
		logger.Debug("Manifest package registered.", "package", path, "extends_packages", bases)
	}
	logger.Debug("Manifest packages installed.", "packages", reg.Packages(), "classes", len(order))
	return nil
}

// classFields computes the struct fields of a class: the marker, then the
// inherited attributes, then its own. built holds the fields of every class
// earlier in topological order.
func classFields(qualified string, c *config.Class, built map[string][]reflect.StructField) ([]reflect.StructField, error) {
	fields := []reflect.StructField{{
		Name: classMarkerField,
		Type: reflect.TypeOf(struct{}{}),
		Tag:  reflect.StructTag(fmt.Sprintf("class:%q", qualified)),
	}}
	byAttr := make(map[string]reflect.Type)
	goNames := map[string]bool{classMarkerField: true}

	if c.Extends != "" {
		for _, f := range built[c.Extends][1:] {
			fields = append(fields, f)
			byAttr[f.Tag.Get("cty")] = f.Type
			goNames[f.Name] = true
		}
	}

	for _, a := range c.Attributes {
		if !isIdentifier(a.Name) {
			return nil, fmt.Errorf("class '%s': invalid attribute name '%s'", qualified, a.Name)
		}
		goType, ok := attributeGoTypes[a.Type]
		if !ok {
			return nil, fmt.Errorf("class '%s', attribute '%s': unsupported type %q", qualified, a.Name, a.Type)
		}
		if inherited, ok := byAttr[a.Name]; ok {
			if inherited != goType {
				return nil, fmt.Errorf("class '%s', attribute '%s': redeclared as %s, inherited as %s", qualified, a.Name, a.Type, inherited)
			}
			continue
		}

		goName := exportedName(a.Name)
		if goNames[goName] {
			return nil, fmt.Errorf("class '%s', attribute '%s': conflicts with another attribute", qualified, a.Name)
		}
		goNames[goName] = true
		byAttr[a.Name] = goType
		fields = append(fields, reflect.StructField{
			Name: goName,
			Type: goType,
			Tag:  reflect.StructTag(fmt.Sprintf("cty:%q", a.Name)),
		})
	}
	return fields, nil
}

// packageModule builds the classes of one package when it is first loaded.
func packageModule(ctx context.Context, p *config.Package, model *config.Model, order []string, fields map[string][]reflect.StructField) registry.Module {
	return registry.ModuleFunc(func(r *registry.Registry) {
		logger := ctxlog.FromContext(ctx).With("package", p.Path)
		for _, qualified := range order {
			owner, c, _ := model.Class(qualified)
			if owner != p {
				continue
			}

			var base *registry.Type
			if c.Extends != "" {
				// Bases in this package are already registered. Others live in
				// packages that never depend on this one, so resolving them
				// cannot re-enter this load.
				var ok bool
				if base, ok = r.Lookup(c.Extends); !ok {
					var err error
					if base, err = r.Resolve(ctx, c.Extends); err != nil {
						panic(fmt.Sprintf("base of class '%s' cannot be resolved: %v", qualified, err))
					}
				}
			}
			r.RegisterClass(qualified, reflect.StructOf(fields[qualified]), base)
			logger.Debug("Class built.", "class", qualified, "base", base.Name(), "attributes", len(fields[qualified])-1)
		}
	})
}

// exportedName derives a Go field name from an attribute name.
func exportedName(attr string) string {
	if attr[0] == '_' {
		return "X" + attr
	}
	return strings.ToUpper(attr[:1]) + attr[1:]
}

// isIdentifier reports whether s is a single, undotted name segment.
func isIdentifier(s string) bool {
	ref, err := typeref.Parse(s)
	return err == nil && !ref.IsQualified() && ref.String() == s
}
