package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Converter is the interface for a format-specific value evaluator. It is
// the bridge between the raw manifest expressions and the Go values handed
// to the validator.
type Converter interface {
	// Value evaluates an expression into its native Go value. A missing
	// expression evaluates to nil.
	Value(ctx context.Context, expr hcl.Expression) (any, error)
}
