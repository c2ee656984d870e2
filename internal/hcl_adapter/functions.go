// This file defines the functions available to manifest value expressions:
// `tuple(...)` builds a fixed-size tuple and `new("pkg.Class", {...})` builds
// a class instance. Both results travel through cty as capsule values.

package hcl_adapter

import (
	"context"
	"fmt"
	"reflect"

	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	tupleCapsule    = cty.Capsule("tuple", reflect.TypeOf(registry.Tuple(nil)))
	instanceCapsule = cty.Capsule("instance", reflect.TypeOf((*any)(nil)).Elem())
)

var tupleFunc = function.New(&function.Spec{
	Description: "Builds a fixed-size tuple from its arguments.",
	VarParam: &function.Parameter{
		Name:             "items",
		Type:             cty.DynamicPseudoType,
		AllowNull:        true,
		AllowDynamicType: true,
	},
	Type: function.StaticReturnType(tupleCapsule),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		items := make(registry.Tuple, len(args))
		for i, arg := range args {
			v, err := ctyToNative(arg)
			if err != nil {
				return cty.NilVal, fmt.Errorf("tuple item %d: %w", i, err)
			}
			items[i] = v
		}
		return cty.CapsuleVal(tupleCapsule, &items), nil
	},
})

// newFunc builds the `new` function. The class is resolved with ctx, which
// may trigger the load of its package.
func (c *Converter) newFunc(ctx context.Context) function.Function {
	return function.New(&function.Spec{
		Description: "Builds an instance of a registered class from an object of attributes.",
		Params: []function.Parameter{
			{Name: "class", Type: cty.String},
		},
		VarParam: &function.Parameter{
			Name:             "attributes",
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		},
		Type: function.StaticReturnType(instanceCapsule),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if len(args) > 2 {
				return cty.NilVal, fmt.Errorf("new takes a class name and at most one attributes object, got %d arguments", len(args))
			}
			name := args[0].AsString()

			t, err := c.registry.Resolve(ctx, name)
			if err != nil {
				return cty.NilVal, err
			}
			goType := t.GoType()
			if goType == nil || goType.Kind() != reflect.Struct {
				return cty.NilVal, fmt.Errorf("%s is not a class", name)
			}

			ptr := reflect.New(goType)
			if len(args) == 2 && !args[1].IsNull() {
				attrs := args[1]
				if !attrs.Type().IsObjectType() {
					return cty.NilVal, fmt.Errorf("attributes of %s must be an object, got %s", name, attrs.Type().FriendlyName())
				}
				if err := gocty.FromCtyValue(attrs, ptr.Interface()); err != nil {
					return cty.NilVal, fmt.Errorf("cannot build %s: %w", name, err)
				}
			}

			ctxlog.FromContext(ctx).Debug("Built class instance.", "class", name)
			instance := ptr.Elem().Interface()
			return cty.CapsuleVal(instanceCapsule, &instance), nil
		},
	})
}
