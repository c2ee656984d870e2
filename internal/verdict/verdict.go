// Package verdict defines the single error kind produced when a value does
// not conform to its declared annotation, along with the message formats
// used for every kind of mismatch.
package verdict

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the sentinel every EnforcedTypingError matches with
// errors.Is. It plays the role of the host's generic type error.
var ErrTypeMismatch = errors.New("type mismatch")

// EnforcedTypingError reports the first mismatch between a binding's value
// and its declared annotation. It carries a human-readable message only.
type EnforcedTypingError struct {
	Message string
	Err     error
}

// Error implements the error interface for EnforcedTypingError.
func (e *EnforcedTypingError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any (e.g. a resolution failure).
func (e *EnforcedTypingError) Unwrap() error {
	return e.Err
}

// Is makes every EnforcedTypingError match ErrTypeMismatch.
func (e *EnforcedTypingError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Mismatch reports a value whose type is not the declared one.
func Mismatch(binding, actual, expected string) *EnforcedTypingError {
	return &EnforcedTypingError{
		Message: fmt.Sprintf("'%s' is a %s, but should be %s.", binding, actual, expected),
	}
}

// PairMismatch reports a mapping entry whose key or value type is not the
// declared one.
func PairMismatch(binding, key, value, expectedKey, expectedValue string) *EnforcedTypingError {
	return &EnforcedTypingError{
		Message: fmt.Sprintf(
			"'%s' has a key type of %s and a value type of %s.\nShould have a key type of %s and a value type of %s.",
			binding, key, value, expectedKey, expectedValue,
		),
	}
}

// IndexMismatch reports a sequence or tuple element of the wrong type.
// Indexes are zero-based.
func IndexMismatch(binding string, index int, actual, expected string) *EnforcedTypingError {
	return &EnforcedTypingError{
		Message: fmt.Sprintf("'%s' has a %s at index %d, but should be %s.", binding, actual, index, expected),
	}
}

// LengthMismatch reports a tuple whose length differs from its declaration.
func LengthMismatch(binding string, actual, expected int) *EnforcedTypingError {
	return &EnforcedTypingError{
		Message: fmt.Sprintf("'%s' has a length of %d, but should be a length of %d.", binding, actual, expected),
	}
}

// Arity reports a container annotation with the wrong number of sub-types.
func Arity(binding, annotation string, actual, expected int) *EnforcedTypingError {
	return &EnforcedTypingError{
		Message: fmt.Sprintf("'%s' is annotated as %s with %d sub-types, but that container takes %d.", binding, annotation, actual, expected),
	}
}

// InvalidAnnotation reports an annotation that could not be interpreted.
func InvalidAnnotation(binding, annotation string, cause error) *EnforcedTypingError {
	return &EnforcedTypingError{
		Message: fmt.Sprintf("'%s' has an invalid annotation %q: %v", binding, annotation, cause),
		Err:     cause,
	}
}
