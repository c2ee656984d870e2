package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a name does not denote any registered type.
	ErrUnknownType = errors.New("name does not denote a registered type")
	// ErrNotAType is returned when a name denotes a package rather than a type.
	ErrNotAType = errors.New("name denotes a package, not a type")
)

// TypeResolutionError reports a textual type reference that could not be
// turned into a type descriptor.
type TypeResolutionError struct {
	Name string
	Err  error
}

// Error implements the error interface for TypeResolutionError.
func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve type %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TypeResolutionError) Unwrap() error {
	return e.Err
}
