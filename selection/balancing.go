package selection

import (
	"math/rand"

	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/step"
)

// Balancing deterministically selects the step with the minimum execution
// count seen so far in the suite's history, breaking ties uniformly at
// random (spec §4.E). Over enough iterations with a stable enabled set, this
// keeps max-minus-min execution count across the set at most 1.
type Balancing struct{}

// Choose implements Algorithm.
func (Balancing) Choose(enabled []*step.Step, h *history.History, rng *rand.Rand) (*step.Step, error) {
	if err := requireNonEmpty(enabled); err != nil {
		return nil, err
	}
	freq := h.StepFrequency()

	min := -1
	var candidates []*step.Step
	for _, s := range enabled {
		count := freq[s.Name]
		switch {
		case min == -1 || count < min:
			min = count
			candidates = []*step.Step{s}
		case count == min:
			candidates = append(candidates, s)
		}
	}
	return candidates[rng.Intn(len(candidates))], nil
}
