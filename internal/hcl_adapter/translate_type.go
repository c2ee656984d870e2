// This file contains the logic for translating HCL type expressions (e.g.
// `str`, `app.models.User`, `list(int)`) into textual annotations.

package hcl_adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToText converts an HCL type expression into the equivalent
// textual annotation. An omitted expression yields the empty string, which
// means "not annotated".
//
// Accepted forms are a quoted string, taken verbatim; a traversal such as
// `app.models.User`; a container call such as `dict(str, list(int))`,
// rendered with brackets; and `null`, which stands for None.
func typeExprToText(ctx context.Context, expr hcl.Expression, attrName string) (string, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return "", nil
	}
	logger := ctxlog.FromContext(ctx)

	switch v := expr.(type) {
	case *hclsyntax.TemplateExpr:
		if len(v.Parts) == 0 {
			return "", fmt.Errorf("type string is empty")
		}
		if !v.IsStringLiteral() {
			return "", fmt.Errorf("type strings cannot contain interpolations")
		}
		val, diags := v.Value(nil)
		if diags.HasErrors() {
			return "", diags
		}
		if val.AsString() == "" {
			return "", fmt.Errorf("type string is empty")
		}
		logger.Debug("Parsed type expression as a string.", "text", val.AsString())
		return val.AsString(), nil

	case *hclsyntax.ScopeTraversalExpr:
		segments := make([]string, 0, len(v.Traversal))
		for _, step := range v.Traversal {
			switch s := step.(type) {
			case hcl.TraverseRoot:
				segments = append(segments, s.Name)
			case hcl.TraverseAttr:
				segments = append(segments, s.Name)
			default:
				return "", fmt.Errorf("invalid type name: only dotted names are allowed, got %T", step)
			}
		}
		text := strings.Join(segments, ".")
		logger.Debug("Parsed type expression as a name.", "text", text)
		return text, nil

	case *hclsyntax.FunctionCallExpr:
		if v.ExpandFinal {
			return "", fmt.Errorf("argument expansion is not allowed in type %s()", v.Name)
		}
		args := make([]string, len(v.Args))
		for i, arg := range v.Args {
			text, err := typeExprToText(ctx, arg, attrName)
			if err != nil {
				return "", fmt.Errorf("in argument %d of %s(): %w", i, v.Name, err)
			}
			if text == "" {
				return "", fmt.Errorf("argument %d of %s() is empty", i, v.Name)
			}
			args[i] = text
		}
		text := v.Name + "[" + strings.Join(args, ", ") + "]"
		logger.Debug("Parsed type expression as a container.", "text", text)
		return text, nil

	case *hclsyntax.LiteralValueExpr:
		if v.Val.IsNull() {
			return "None", nil
		}
		if v.Val.Type() == cty.String {
			return v.Val.AsString(), nil
		}
		return "", fmt.Errorf("a %s literal is not a type", v.Val.Type().FriendlyName())

	default:
		return "", fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
