package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SingleWriterInvariant(t *testing.T) {
	h := New()
	_, err := h.StartTest(time.Now())
	require.NoError(t, err)

	_, err = h.StartTest(time.Now())
	assert.ErrorIs(t, err, ErrTestAlreadyOpen)
}

func TestHistory_AppendRequiresOpenTest(t *testing.T) {
	h := New()
	err := h.AppendStep(TestStepLog{StepName: "a"})
	assert.ErrorIs(t, err, ErrNoOpenTest)
}

func TestHistory_MonotonicTotalSteps(t *testing.T) {
	h := New()
	_, err := h.StartTest(time.Now())
	require.NoError(t, err)

	require.NoError(t, h.AppendStep(TestStepLog{StepName: "a", Outcome: OutcomeOK}))
	assert.Equal(t, 1, h.TotalSteps())
	require.NoError(t, h.AppendStep(TestStepLog{StepName: "b", Outcome: OutcomeError}))
	assert.Equal(t, 2, h.TotalSteps())

	h.EndCurrentTest(time.Now())
	assert.Equal(t, 2, h.TotalSteps(), "total steps must not decrease after sealing")
	assert.Equal(t, 1, h.SealedTestCount())
	assert.Equal(t, 1, h.TotalErrors())
}

func TestHistory_CoveragePercentage(t *testing.T) {
	h := New()
	_, err := h.StartTest(time.Now())
	require.NoError(t, err)
	require.NoError(t, h.AppendStep(TestStepLog{StepName: "a"}))
	require.NoError(t, h.AppendStep(TestStepLog{StepName: "b"}))

	pct := h.CoveragePercentage([]string{"a", "b", "c", "d"})
	assert.Equal(t, 50.0, pct)

	testPct := h.CurrentTestCoveragePercentage([]string{"a", "b", "c", "d"})
	assert.Equal(t, 50.0, testPct)
}

func TestHistory_AtMostOneOpenTest(t *testing.T) {
	h := New()
	rec, err := h.StartTest(time.Now())
	require.NoError(t, err)
	assert.False(t, rec.Stopped())

	cur, ok := h.CurrentTest()
	require.True(t, ok)
	assert.Same(t, rec, cur)

	h.EndCurrentTest(time.Now())
	assert.True(t, rec.Stopped())
	_, ok = h.CurrentTest()
	assert.False(t, ok)
}

func TestHistory_EndCurrentTestNoOpWhenNoneOpen(t *testing.T) {
	h := New()
	h.EndCurrentTest(time.Now()) // must not panic
	assert.Equal(t, 0, len(h.Tests()))
}

func TestHistory_SeedDefaultsToZeroUntilRecorded(t *testing.T) {
	h := New()
	assert.Zero(t, h.Seed())

	h.SeedUsed(12345)
	assert.EqualValues(t, 12345, h.Seed())
}

func TestHistory_StepFrequency(t *testing.T) {
	h := New()
	_, err := h.StartTest(time.Now())
	require.NoError(t, err)
	require.NoError(t, h.AppendStep(TestStepLog{StepName: "a"}))
	require.NoError(t, h.AppendStep(TestStepLog{StepName: "a"}))
	require.NoError(t, h.AppendStep(TestStepLog{StepName: "b"}))

	freq := h.StepFrequency()
	assert.Equal(t, 2, freq["a"])
	assert.Equal(t, 1, freq["b"])
}
