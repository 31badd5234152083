package engine

import (
	"errors"
	"fmt"
)

// StepFailed reports an error from one step iteration (the before hook, the
// step's pre-hook, action, or post-hook, the after hook, or the selection
// algorithm) that the test-level error strategy propagated out of the test.
type StepFailed struct {
	Test string
	Step string
	Err  error
}

// Error implements the error interface.
func (e *StepFailed) Error() string {
	return fmt.Sprintf("step %q failed in test %s: %v", e.Step, e.Test, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *StepFailed) Unwrap() error { return e.Err }

// IsStepFailed reports whether err is (or wraps) a *StepFailed.
func IsStepFailed(err error) bool {
	var target *StepFailed
	return errors.As(err, &target)
}

// HookFailed reports a lifecycle hook (before/after at any level) that
// returned an error and was propagated all the way out of the suite.
type HookFailed struct {
	HookName string
	Err      error
}

// Error implements the error interface.
func (e *HookFailed) Error() string {
	return fmt.Sprintf("hook %q failed: %v", e.HookName, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *HookFailed) Unwrap() error { return e.Err }

// IsHookFailed reports whether err is (or wraps) a *HookFailed.
func IsHookFailed(err error) bool {
	var target *HookFailed
	return errors.As(err, &target)
}

// NoAvailableSteps reports that every step's guard evaluated false at once,
// leaving nothing for the selection algorithm to choose from (spec §4.F
// empty enabled-steps policy).
type NoAvailableSteps struct {
	Test string
}

// Error implements the error interface.
func (e *NoAvailableSteps) Error() string {
	return fmt.Sprintf("no available steps in test %s", e.Test)
}

// IsNoAvailableSteps reports whether err is (or wraps) a *NoAvailableSteps.
func IsNoAvailableSteps(err error) bool {
	var target *NoAvailableSteps
	return errors.As(err, &target)
}

// Interrupted wraps a context cancellation observed during a run. Never
// absorbed by any error strategy (spec §7 taxonomy item 6).
type Interrupted struct {
	Err error
}

// Error implements the error interface.
func (e *Interrupted) Error() string {
	return fmt.Sprintf("interrupted: %v", e.Err)
}

// Unwrap exposes the underlying context error for errors.Is/As.
func (e *Interrupted) Unwrap() error { return e.Err }

// IsInterrupted reports whether err is (or wraps) an *Interrupted.
func IsInterrupted(err error) bool {
	var target *Interrupted
	return errors.As(err, &target)
}
