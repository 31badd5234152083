package errorstrategy

import (
	"errors"
	"testing"

	"github.com/osmo-tool/gosmo/step"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestAlwaysRaise(t *testing.T) {
	var s AlwaysRaise
	assert.Equal(t, Propagate, s.OnTestError(errBoom))
	assert.Equal(t, Propagate, s.OnSuiteError(errBoom))
}

func TestAlwaysIgnore(t *testing.T) {
	var s AlwaysIgnore
	assert.Equal(t, Absorb, s.OnTestError(errBoom))
	assert.Equal(t, Absorb, s.OnSuiteError(errBoom))
}

func TestIgnoreAssertions(t *testing.T) {
	var s IgnoreAssertions
	assertionErr := step.NewAssertionError("expected true", nil)

	assert.Equal(t, Absorb, s.OnTestError(assertionErr))
	assert.Equal(t, Absorb, s.OnSuiteError(assertionErr))
	assert.Equal(t, Propagate, s.OnTestError(errBoom))
	assert.Equal(t, Propagate, s.OnSuiteError(errBoom))
}

func TestAllowCount_Threshold(t *testing.T) {
	s := NewAllowCount(2)

	assert.Equal(t, Absorb, s.OnTestError(errBoom))
	assert.Equal(t, Absorb, s.OnTestError(errBoom))
	assert.Equal(t, Propagate, s.OnTestError(errBoom), "third error exceeds n=2")
	assert.Equal(t, Propagate, s.OnTestError(errBoom), "stays propagating once exceeded")
}

func TestAllowCount_ScopesAreIndependent(t *testing.T) {
	s := NewAllowCount(1)

	assert.Equal(t, Absorb, s.OnTestError(errBoom))
	assert.Equal(t, Propagate, s.OnTestError(errBoom))

	// Suite-level counter has its own budget, unaffected by test-level use.
	assert.Equal(t, Absorb, s.OnSuiteError(errBoom))
	assert.Equal(t, Propagate, s.OnSuiteError(errBoom))
}

func TestAllowCount_ResetScopes(t *testing.T) {
	s := NewAllowCount(0)

	assert.Equal(t, Propagate, s.OnTestError(errBoom))
	s.ResetTestScope()
	assert.Equal(t, Propagate, s.OnTestError(errBoom), "n=0 always propagates even after reset")

	s2 := NewAllowCount(1)
	assert.Equal(t, Absorb, s2.OnTestError(errBoom))
	s2.ResetTestScope()
	assert.Equal(t, Absorb, s2.OnTestError(errBoom), "reset restores the budget")
}

// allCombinations enumerates the four concrete strategy kinds so both
// positions of the 4x4 test/suite pairing (spec §4.D) can be exercised
// uniformly.
func allCombinations() map[string]Strategy {
	return map[string]Strategy{
		"AlwaysRaise":      AlwaysRaise{},
		"AlwaysIgnore":     AlwaysIgnore{},
		"IgnoreAssertions": IgnoreAssertions{},
		"AllowCount(1)":    NewAllowCount(1),
	}
}

func TestSixteenCombinations_AreIndependentAndConsistent(t *testing.T) {
	// Decision each kind gives for a first, non-assertion error in a fresh
	// scope.
	firstDecision := map[string]Decision{
		"AlwaysRaise":      Propagate,
		"AlwaysIgnore":     Absorb,
		"IgnoreAssertions": Propagate,
		"AllowCount(1)":    Absorb,
	}
	for testName := range allCombinations() {
		for suiteName := range allCombinations() {
			t.Run(testName+"/"+suiteName, func(t *testing.T) {
				// The two strategies never need to agree with each other;
				// each must simply behave per its own definition in
				// isolation. Fresh instances keep AllowCount's counters
				// from carrying over between pairings.
				testStrategy := allCombinations()[testName]
				suiteStrategy := allCombinations()[suiteName]
				testDecision := testStrategy.OnTestError(errBoom)
				suiteDecision := suiteStrategy.OnSuiteError(errBoom)
				assert.Contains(t, []Decision{Absorb, Propagate}, testDecision)
				assert.Contains(t, []Decision{Absorb, Propagate}, suiteDecision)
				assert.Equal(t, firstDecision[testName], testDecision)
				assert.Equal(t, firstDecision[suiteName], suiteDecision)
			})
		}
	}
}
