package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/zclconf/go-cty/cty/function"
)

// Converter is the HCL-specific implementation of the config.Converter
// interface. Class names used by `new(...)` are resolved through its registry.
type Converter struct {
	registry *registry.Registry
}

// NewConverter creates a new HCL converter bound to a registry.
func NewConverter(reg *registry.Registry) *Converter {
	return &Converter{registry: reg}
}

// Value evaluates an expression into its native Go value.
func (c *Converter) Value(ctx context.Context, expr hcl.Expression) (any, error) {
	if !isExprDefined(ctx, expr, "value") {
		return nil, nil
	}

	val, diags := expr.Value(c.evalContext(ctx))
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate expression at %s: %w", expr.Range(), diags)
	}

	native, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("at %s: %w", expr.Range(), err)
	}
	ctxlog.FromContext(ctx).Debug("Evaluated manifest value.", "range", expr.Range().String(), "go_type", fmt.Sprintf("%T", native))
	return native, nil
}

// evalContext exposes the manifest functions. There are no variables.
func (c *Converter) evalContext(ctx context.Context) *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"tuple": tupleFunc,
			"new":   c.newFunc(ctx),
		},
	}
}
