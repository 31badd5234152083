package endcondition

import "github.com/osmo-tool/gosmo/history"

// Length ends a test once it has at least N steps, or ends a suite once it
// contains at least N sealed tests (spec §4.C).
type Length struct {
	n int
}

// NewLength builds a Length end condition. n must be strictly positive.
func NewLength(n int) (*Length, error) {
	if n <= 0 {
		return nil, newConfigError("Length: n must be positive, got %d", n)
	}
	return &Length{n: n}, nil
}

// EndTest reports whether the open test has reached n steps.
func (l *Length) EndTest(h *history.History) bool {
	cur, ok := h.CurrentTest()
	if !ok {
		return false
	}
	return len(cur.Steps) >= l.n
}

// EndSuite reports whether the suite has sealed at least n tests.
func (l *Length) EndSuite(h *history.History) bool {
	return h.SealedTestCount() >= l.n
}
