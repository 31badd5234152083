package reporting

import (
	"testing"
	"time"

	"github.com/osmo-tool/gosmo/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHistory(t *testing.T) *history.History {
	t.Helper()
	h := history.New()
	_, err := h.StartTest(time.Now())
	require.NoError(t, err)
	require.NoError(t, h.AppendStep(history.TestStepLog{StepName: "a"}))
	require.NoError(t, h.AppendStep(history.TestStepLog{StepName: "b", Outcome: history.OutcomeError}))
	h.EndCurrentTest(time.Now())
	return h
}

func TestSummary_ContainsStepNamesAndCoverage(t *testing.T) {
	h := buildHistory(t)
	out := Summary(h, []string{"a", "b", "c"})
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.Contains(t, out, "c")
	assert.Contains(t, out, "coverage")
}

func TestSnapshot_YAML(t *testing.T) {
	h := buildHistory(t)
	snap := NewSnapshot(h, []string{"a", "b", "c"})
	assert.Equal(t, 1, snap.Tests)
	assert.Equal(t, 2, snap.TotalSteps)
	assert.Equal(t, 1, snap.TotalErrors)

	out, err := snap.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "tests: 1")
	assert.Contains(t, out, "step_counts:")
}
