package endcondition

import "github.com/osmo-tool/gosmo/history"

// StepCoverage ends a test or suite once the coverage percentage of a fixed
// catalogue of step names reaches p (spec §4.C). The test-level variant
// considers only the current test's unique steps; the suite-level variant
// is cumulative across the whole suite (spec §9: the source's suite-level
// check was documented as buggy — checking only the current test — and this
// implementation intentionally does not reproduce that bug).
type StepCoverage struct {
	p         float64
	catalogue []string
}

// NewStepCoverage builds a StepCoverage end condition. p must be in the
// inclusive range [1, 100].
func NewStepCoverage(p float64, catalogue []string) (*StepCoverage, error) {
	if p < 1 || p > 100 {
		return nil, newConfigError("StepCoverage: p must be in [1, 100], got %v", p)
	}
	return &StepCoverage{p: p, catalogue: catalogue}, nil
}

// EndTest reports whether the open test's own coverage has reached p.
func (c *StepCoverage) EndTest(h *history.History) bool {
	return h.CurrentTestCoveragePercentage(c.catalogue) >= c.p
}

// EndSuite reports whether cumulative suite coverage has reached p.
func (c *StepCoverage) EndSuite(h *history.History) bool {
	return h.CoveragePercentage(c.catalogue) >= c.p
}
