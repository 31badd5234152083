package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTestAlreadyOpen is returned by StartTest when another TestCaseRecord is
// already open (spec §4.A invariant: at most one unsealed record at a time).
var ErrTestAlreadyOpen = errors.New("history: a test is already open")

// ErrNoOpenTest is returned by AppendStep when no TestCaseRecord is open.
var ErrNoOpenTest = errors.New("history: no test is open")

// History is the append-only, ordered sequence of TestCaseRecords for one
// suite run, plus the derived queries defined in spec §3. The engine is its
// only writer (spec §4.A: single-writer).
type History struct {
	tests      []*TestCaseRecord
	current    *TestCaseRecord
	suiteStart time.Time
	seed       int64
}

// New returns an empty History. SuiteStarted should be called once the
// engine enters the SUITE phase, per the spec's recommended resolution of
// the open question on when suite-level Time starts counting.
func New() *History {
	return &History{}
}

// SuiteStarted records the wall-clock instant the suite began, for the
// suite-level Time end condition.
func (h *History) SuiteStarted(at time.Time) { h.suiteStart = at }

// SuiteStart returns the instant SuiteStarted was called with (zero value if
// never called).
func (h *History) SuiteStart() time.Time { return h.suiteStart }

// SeedUsed records the resolved seed the engine fed its random source with,
// whether supplied explicitly in Config or derived from the current time
// because Config.Seed was omitted (spec §6: "if omitted, seed is derived
// from current time and recorded").
func (h *History) SeedUsed(seed int64) { h.seed = seed }

// Seed returns the seed the run was driven with, so a caller can reproduce
// or audit the run per spec §8 property 5 even when the seed was derived
// rather than supplied.
func (h *History) Seed() int64 { return h.seed }

// StartTest opens a new TestCaseRecord and appends it to the sequence.
func (h *History) StartTest(at time.Time) (*TestCaseRecord, error) {
	if h.current != nil {
		return nil, ErrTestAlreadyOpen
	}
	rec := &TestCaseRecord{ID: uuid.NewString(), Start: at}
	h.tests = append(h.tests, rec)
	h.current = rec
	return rec, nil
}

// EndCurrentTest seals the open record, if any. No-op if none is open.
func (h *History) EndCurrentTest(at time.Time) {
	if h.current == nil {
		return
	}
	h.current.Seal(at)
	h.current = nil
}

// AppendStep appends a step log to the open test record.
func (h *History) AppendStep(log TestStepLog) error {
	if h.current == nil {
		return ErrNoOpenTest
	}
	h.current.Steps = append(h.current.Steps, log)
	if log.Outcome == OutcomeError {
		h.current.ErrorCount++
	}
	return nil
}

// CurrentTest returns the open TestCaseRecord, if any.
func (h *History) CurrentTest() (*TestCaseRecord, bool) {
	if h.current == nil {
		return nil, false
	}
	return h.current, true
}

// Tests returns every TestCaseRecord in the suite, sealed or not, in
// execution order.
func (h *History) Tests() []*TestCaseRecord {
	out := make([]*TestCaseRecord, len(h.tests))
	copy(out, h.tests)
	return out
}

// SealedTestCount returns the number of tests that have been sealed, used by
// the suite-level Length end condition.
func (h *History) SealedTestCount() int {
	n := 0
	for _, t := range h.tests {
		if t.Stopped() {
			n++
		}
	}
	return n
}

// TotalSteps is the sum of step counts across every test, open or sealed.
func (h *History) TotalSteps() int {
	n := 0
	for _, t := range h.tests {
		n += len(t.Steps)
	}
	return n
}

// StepFrequency counts how many times each step name was executed across
// the whole suite.
func (h *History) StepFrequency() map[string]int {
	freq := make(map[string]int)
	for _, t := range h.tests {
		for _, s := range t.Steps {
			freq[s.StepName]++
		}
	}
	return freq
}

// UniqueStepsExecuted is the set of distinct step names executed anywhere in
// the suite.
func (h *History) UniqueStepsExecuted() map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range h.tests {
		for name := range t.UniqueSteps() {
			set[name] = struct{}{}
		}
	}
	return set
}

// CoveragePercentage is |unique_steps_executed ∩ catalogue| / |catalogue| *
// 100, evaluated across the whole suite.
func (h *History) CoveragePercentage(catalogue []string) float64 {
	return coverage(h.UniqueStepsExecuted(), catalogue)
}

// CurrentTestUniqueSteps is the set of distinct step names executed so far
// in the open test (empty if none is open).
func (h *History) CurrentTestUniqueSteps() map[string]struct{} {
	if h.current == nil {
		return map[string]struct{}{}
	}
	return h.current.UniqueSteps()
}

// CurrentTestCoveragePercentage is the test-scoped variant of
// CoveragePercentage, considering only the open test's unique steps.
func (h *History) CurrentTestCoveragePercentage(catalogue []string) float64 {
	return coverage(h.CurrentTestUniqueSteps(), catalogue)
}

func coverage(executed map[string]struct{}, catalogue []string) float64 {
	if len(catalogue) == 0 {
		return 0
	}
	hit := 0
	for _, name := range catalogue {
		if _, ok := executed[name]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(catalogue)) * 100
}

// TotalErrors sums ErrorCount across every test in the suite.
func (h *History) TotalErrors() int {
	n := 0
	for _, t := range h.tests {
		n += t.ErrorCount
	}
	return n
}
