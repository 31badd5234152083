// Package selection implements the policies that pick the next step from the
// set the model currently has enabled (spec §4.E), grounded on the
// teacher's scheduling loop (internal/orchestrator) and its weight/template
// resolution style (internal/workflow/executor.go).
package selection

import (
	"fmt"
	"math/rand"

	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/step"
)

// Algorithm chooses one step out of a non-empty enabled set. The engine
// never calls Choose with an empty slice; callers implementing their own
// Algorithm may assume the same (spec §4.E precondition, §8 property 6).
type Algorithm interface {
	Choose(enabled []*step.Step, h *history.History, rng *rand.Rand) (*step.Step, error)
}

func requireNonEmpty(enabled []*step.Step) error {
	if len(enabled) == 0 {
		return fmt.Errorf("selection: choose called with an empty candidate set")
	}
	return nil
}
