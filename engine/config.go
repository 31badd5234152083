// Package engine runs a model's step catalogue to completion against a
// configured selection algorithm, end conditions, and error strategies,
// producing a sealed History (spec §4.F). Grounded on the teacher's
// phase-driven test runner (internal/testing/test_runner.go) and its
// template/hook execution loop (internal/workflow/executor.go).
package engine

import (
	"github.com/osmo-tool/gosmo/endcondition"
	"github.com/osmo-tool/gosmo/errorstrategy"
	"github.com/osmo-tool/gosmo/selection"
)

// Config fixes everything the engine needs before a Run, per the design
// note that engine configuration is a plain struct rather than mutable
// global state.
type Config struct {
	// Seed drives every selection algorithm's pseudo-random source. Equal
	// seed, model, and step side effects reproduce an identical run
	// (spec §8 property 5). Nil means "omitted": per spec §6, the engine
	// derives a seed from the current time and records the resolved value
	// on the returned History (History.Seed) so the run remains auditable.
	Seed *int64

	Algorithm selection.Algorithm

	TestEndCondition  endcondition.EndCondition
	SuiteEndCondition endcondition.EndCondition

	TestErrorStrategy  errorstrategy.Strategy
	SuiteErrorStrategy errorstrategy.Strategy

	// StopOnFail, if true, ends the suite immediately once any error
	// propagates out of a test, regardless of SuiteErrorStrategy's decision.
	StopOnFail bool

	// StopTestOnException, if true, ends the current test on any
	// non-assertion step error even when the test-level strategy would
	// otherwise absorb it.
	StopTestOnException bool
}

// Validate reports a *endcondition.ConfigurationError for any missing
// required collaborator. Called once, at engine construction, per the spec's
// error taxonomy (§7: configuration errors are fatal before any suite hook
// runs).
func (c Config) Validate() error {
	switch {
	case c.Algorithm == nil:
		return endcondition.NewConfigurationError("engine: Algorithm is required")
	case c.TestEndCondition == nil:
		return endcondition.NewConfigurationError("engine: TestEndCondition is required")
	case c.SuiteEndCondition == nil:
		return endcondition.NewConfigurationError("engine: SuiteEndCondition is required")
	case c.TestErrorStrategy == nil:
		return endcondition.NewConfigurationError("engine: TestErrorStrategy is required")
	case c.SuiteErrorStrategy == nil:
		return endcondition.NewConfigurationError("engine: SuiteErrorStrategy is required")
	}
	return nil
}
