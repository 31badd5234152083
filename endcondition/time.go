package endcondition

import (
	"time"

	"github.com/osmo-tool/gosmo/history"
)

// nowFunc is overridable in tests.
var nowFunc = time.Now

// Time ends a test once its wall-clock duration reaches the configured
// number of seconds, or ends the suite once the suite's wall-clock duration
// does (spec §4.C). It does not preempt a running step; it only stops the
// loop at the next evaluation point (spec §5).
type Time struct {
	d time.Duration
}

// NewTime builds a Time end condition. seconds must be strictly positive.
func NewTime(seconds float64) (*Time, error) {
	if seconds <= 0 {
		return nil, newConfigError("Time: seconds must be positive, got %v", seconds)
	}
	return &Time{d: time.Duration(seconds * float64(time.Second))}, nil
}

// EndTest reports whether the open test has run for at least the configured
// duration.
func (t *Time) EndTest(h *history.History) bool {
	cur, ok := h.CurrentTest()
	if !ok {
		return false
	}
	return cur.Duration(nowFunc()) >= t.d
}

// EndSuite reports whether the suite has run for at least the configured
// duration, measured from the start of the SUITE phase (spec §9 open
// question, resolved in favor of "from the first before_suite call").
func (t *Time) EndSuite(h *history.History) bool {
	if h.SuiteStart().IsZero() {
		return false
	}
	return nowFunc().Sub(h.SuiteStart()) >= t.d
}
