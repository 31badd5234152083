// Package history is the append-only ledger of suites, tests, and steps: the
// single source of truth selection algorithms, end conditions, and error
// strategies all read from (spec §3, §4.A).
package history

import "time"

// Outcome is the result of one executed step.
type Outcome int

const (
	// OutcomeOK marks a step that completed without error.
	OutcomeOK Outcome = iota
	// OutcomeError marks a step iteration in which the before hook, the
	// step's pre-hook, action, or post-hook, the after hook, or the
	// selection algorithm returned an error.
	OutcomeError
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == OutcomeError {
		return "error"
	}
	return "ok"
}

// TestStepLog records a single executed step. Appended once at step
// completion (success or failure); never mutated afterward.
type TestStepLog struct {
	StepName string
	Start    time.Time
	Duration time.Duration
	Outcome  Outcome
	// Err is the captured failure, set only when Outcome == OutcomeError.
	Err error
}

// TestCaseRecord is one test: an ordered sequence of TestStepLog entries
// bounded by BeforeTest/AfterTest. Created open at test start, appended to
// during the test, sealed exactly once at test end.
type TestCaseRecord struct {
	// ID uniquely identifies this test case within the suite.
	ID string

	Start time.Time
	End   time.Time

	Steps []TestStepLog

	// ErrorCount is the number of steps in this test whose outcome was
	// OutcomeError, whether absorbed or propagated.
	ErrorCount int

	stopped bool
}

// Stopped reports whether the record has been sealed. Transitions false ->
// true exactly once, monotonically (spec §3 TestCaseRecord invariant).
func (r *TestCaseRecord) Stopped() bool { return r.stopped }

// Seal closes the record. No-op if already sealed.
func (r *TestCaseRecord) Seal(end time.Time) {
	if r.stopped {
		return
	}
	r.stopped = true
	r.End = end
}

// Duration is the wall-clock time elapsed since the test began. While open,
// it is measured against now.
func (r *TestCaseRecord) Duration(now time.Time) time.Duration {
	if r.stopped {
		return r.End.Sub(r.Start)
	}
	return now.Sub(r.Start)
}

// UniqueSteps returns the set of distinct step names that appear in this
// test's log.
func (r *TestCaseRecord) UniqueSteps() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Steps))
	for _, s := range r.Steps {
		set[s.StepName] = struct{}{}
	}
	return set
}
