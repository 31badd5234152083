package step

import (
	"errors"
	"fmt"
)

// ModelStructureError reports a fatal, construction-time defect in a model's
// catalogue: a duplicate step name, a guard or weight declared for a
// non-existent step, an invalid weight, or a catalogue with no steps at all.
// Follows the typed-error plus IsXxx helper convention this module uses for
// its other inspectable errors (e.g. endcondition.IsConfigurationError).
type ModelStructureError struct {
	// Detail is a human-readable description of the defect.
	Detail string
}

// Error implements the error interface.
func (e *ModelStructureError) Error() string {
	return fmt.Sprintf("model structure error: %s", e.Detail)
}

// IsModelStructureError reports whether err is (or wraps) a
// *ModelStructureError.
func IsModelStructureError(err error) bool {
	var target *ModelStructureError
	return errors.As(err, &target)
}

func newStructureError(format string, args ...interface{}) *ModelStructureError {
	return &ModelStructureError{Detail: fmt.Sprintf(format, args...)}
}

// AssertionError marks a step or hook failure as an assertion failure rather
// than an unexpected runtime error. errorstrategy.IgnoreAssertions absorbs
// exactly this kind.
type AssertionError struct {
	// Message describes what was asserted and how it failed.
	Message string
	// Err is the underlying cause, if any (e.g. a wrapped testify failure).
	Err error
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assertion failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("assertion failed: %s", e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *AssertionError) Unwrap() error { return e.Err }

// NewAssertionError builds an *AssertionError carrying message and an
// optional underlying cause.
func NewAssertionError(message string, cause error) *AssertionError {
	return &AssertionError{Message: message, Err: cause}
}

// IsAssertionError reports whether err is (or wraps) an *AssertionError.
func IsAssertionError(err error) bool {
	var target *AssertionError
	return errors.As(err, &target)
}
