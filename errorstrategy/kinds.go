package errorstrategy

import "github.com/osmo-tool/gosmo/step"

// TestScopeResetter is implemented by strategies that keep a counter scoped
// to a single test (AllowCount). The engine calls ResetTestScope when it
// opens a new test.
type TestScopeResetter interface {
	ResetTestScope()
}

// SuiteScopeResetter is implemented by strategies that keep a counter scoped
// to the whole suite (AllowCount). The engine calls ResetSuiteScope once,
// before the suite loop begins.
type SuiteScopeResetter interface {
	ResetSuiteScope()
}

// AlwaysRaise always propagates, at both levels.
type AlwaysRaise struct{}

// OnTestError always returns Propagate.
func (AlwaysRaise) OnTestError(error) Decision { return Propagate }

// OnSuiteError always returns Propagate.
func (AlwaysRaise) OnSuiteError(error) Decision { return Propagate }

// AlwaysIgnore always absorbs, at both levels.
type AlwaysIgnore struct{}

// OnTestError always returns Absorb.
func (AlwaysIgnore) OnTestError(error) Decision { return Absorb }

// OnSuiteError always returns Absorb.
func (AlwaysIgnore) OnSuiteError(error) Decision { return Absorb }

// IgnoreAssertions absorbs assertion failures (step.AssertionError) and
// propagates everything else.
type IgnoreAssertions struct{}

// OnTestError absorbs iff err is an *step.AssertionError.
func (IgnoreAssertions) OnTestError(err error) Decision {
	return decideOnAssertion(err)
}

// OnSuiteError absorbs iff err is an *step.AssertionError.
func (IgnoreAssertions) OnSuiteError(err error) Decision {
	return decideOnAssertion(err)
}

func decideOnAssertion(err error) Decision {
	if step.IsAssertionError(err) {
		return Absorb
	}
	return Propagate
}

// AllowCount absorbs the first N errors observed in a scope and propagates
// the (N+1)-th; the test-level and suite-level counters are independent, per
// spec §4.D. A zero value is a valid AllowCount(0): the first error always
// propagates.
type AllowCount struct {
	n int

	testCount  int
	suiteCount int
}

// NewAllowCount builds an AllowCount strategy that absorbs up to n errors per
// scope.
func NewAllowCount(n int) *AllowCount {
	return &AllowCount{n: n}
}

// OnTestError absorbs while the per-test observed count is <= n.
func (a *AllowCount) OnTestError(error) Decision {
	a.testCount++
	if a.testCount <= a.n {
		return Absorb
	}
	return Propagate
}

// OnSuiteError absorbs while the per-suite observed count is <= n.
func (a *AllowCount) OnSuiteError(error) Decision {
	a.suiteCount++
	if a.suiteCount <= a.n {
		return Absorb
	}
	return Propagate
}

// ResetTestScope zeroes the per-test counter; called when a new test starts.
func (a *AllowCount) ResetTestScope() { a.testCount = 0 }

// ResetSuiteScope zeroes the per-suite counter; called once before the suite
// loop begins.
func (a *AllowCount) ResetSuiteScope() { a.suiteCount = 0 }
