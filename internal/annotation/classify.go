package annotation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/specialistvlad/enforcetyping/internal/verdict"
)

var errNilType = errors.New("annotation has no type")

// Classifier reduces annotations to Plain or Parameterized form, resolving
// textual names through its Registry.
type Classifier struct {
	Registry *registry.Registry
	// Strict turns annotations that would otherwise be skipped (unresolvable
	// or malformed text) into errors.
	Strict bool
}

// Classify classifies the annotation declared for binding. It returns false
// when the annotation carries no constraint and validation must be skipped.
//
// Sub-annotations of a container are always held to the strict rule: a
// container whose sub-types cannot be interpreted is an error.
func (c *Classifier) Classify(ctx context.Context, binding string, a Annotation) (Annotation, bool, error) {
	return c.classify(ctx, binding, a, false)
}

func (c *Classifier) classify(ctx context.Context, binding string, a Annotation, nested bool) (Annotation, bool, error) {
	switch v := a.(type) {
	case nil:
		if nested {
			return nil, false, verdict.InvalidAnnotation(binding, "<nil>", errNilType)
		}
		return nil, false, nil

	case Plain:
		if v.Type == nil {
			return nil, false, verdict.InvalidAnnotation(binding, "<nil>", errNilType)
		}
		return v, true, nil

	case Parameterized:
		if !v.Kind.IsContainer() {
			return nil, false, verdict.InvalidAnnotation(binding, v.String(), fmt.Errorf("kind %s is not a container", v.Kind))
		}
		args := make([]Annotation, len(v.Args))
		for i, arg := range v.Args {
			classified, _, err := c.classify(ctx, binding, arg, true)
			if err != nil {
				return nil, false, err
			}
			args[i] = classified
		}
		return Parameterized{Kind: v.Kind, Args: args}, true, nil

	case Textual:
		return c.classifyText(ctx, binding, strings.TrimSpace(string(v)), nested)

	default:
		return nil, false, verdict.InvalidAnnotation(binding, fmt.Sprintf("%v", a), fmt.Errorf("unsupported annotation %T", a))
	}
}

func (c *Classifier) classifyText(ctx context.Context, binding, text string, nested bool) (Annotation, bool, error) {
	logger := ctxlog.FromContext(ctx).With("binding", binding, "annotation", text)

	sub, err := parseSubscript(text)
	if err != nil {
		return c.skip(ctx, binding, text, nested, err)
	}

	if sub != nil {
		kind, ok := containerKind(sub.name)
		if !ok {
			return c.skip(ctx, binding, text, nested, fmt.Errorf("%s is not a supported container", sub.base))
		}
		logger.Debug("Parsing textual container annotation.", "container", sub.base, "args", len(sub.args))

		var args []Annotation
		for _, argText := range sub.args {
			arg, _, err := c.classifyText(ctx, binding, argText, true)
			if err != nil {
				return nil, false, err
			}
			args = append(args, arg)
		}
		return Parameterized{Kind: kind, Args: args}, true, nil
	}

	t, err := c.Registry.Resolve(ctx, text)
	if err != nil {
		if isBareContainer(text) && !nested && !c.Strict {
			logger.Debug("Generic container without subscript carries no constraint, skipping.")
			return nil, false, nil
		}
		return c.skip(ctx, binding, text, nested, err)
	}
	return Plain{Type: t}, true, nil
}

// skip applies the permissive policy: at top level and outside strict mode
// an uninterpretable annotation is treated as no constraint.
func (c *Classifier) skip(ctx context.Context, binding, text string, nested bool, cause error) (Annotation, bool, error) {
	if nested || c.Strict {
		return nil, false, verdict.InvalidAnnotation(binding, text, cause)
	}
	ctxlog.FromContext(ctx).Warn("Annotation cannot be interpreted, skipping validation for this binding.",
		"binding", binding, "annotation", text, "error", cause)
	return nil, false, nil
}
