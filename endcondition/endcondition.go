// Package endcondition provides the composable predicates (spec §4.C) that
// tell the execution engine when to stop a test or a suite.
package endcondition

import (
	"errors"
	"fmt"

	"github.com/osmo-tool/gosmo/history"
)

// EndCondition exposes two independent predicates over the current History:
// one that gates a test, one that gates a suite. End conditions are
// evaluated after the step or test they gate on (spec §4.C tie-break rule).
type EndCondition interface {
	// EndTest reports whether the currently open test should end.
	EndTest(h *history.History) bool
	// EndSuite reports whether the suite should end.
	EndSuite(h *history.History) bool
}

// ConfigurationError reports a fatal, construction-time defect in an end
// condition: an out-of-range StepCoverage percentage or a non-positive
// Length or Time. engine.Config validation reports missing collaborators
// with it as well.
type ConfigurationError struct {
	Detail string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Detail)
}

// IsConfigurationError reports whether err is (or wraps) a
// *ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

func newConfigError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Detail: fmt.Sprintf(format, args...)}
}

// NewConfigurationError builds a *ConfigurationError. Exported so other
// packages (engine.Config validation) can report construction-time defects
// using the same typed-error convention rather than inventing their own.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return newConfigError(format, args...)
}
