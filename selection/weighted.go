package selection

import (
	"fmt"
	"math/rand"

	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/step"
)

// Weighted selects proportionally to each step's current weight, evaluated
// fresh on every call (spec §4.E).
type Weighted struct{}

// Choose implements Algorithm.
func (Weighted) Choose(enabled []*step.Step, _ *history.History, rng *rand.Rand) (*step.Step, error) {
	if err := requireNonEmpty(enabled); err != nil {
		return nil, err
	}
	weights := make([]float64, len(enabled))
	var total float64
	for i, s := range enabled {
		w, err := s.CurrentWeight()
		if err != nil {
			return nil, fmt.Errorf("selection: evaluating weight for step %q: %w", s.Name, err)
		}
		weights[i] = w
		total += w
	}
	return pickProportional(enabled, weights, total, rng), nil
}

// pickProportional draws one element of items with probability proportional
// to the matching entry in scores, whose sum must equal total. Scores must
// already be non-negative; any strictly-positive scoring scheme (Weighted,
// WeightedBalancing) can share this routine.
func pickProportional(items []*step.Step, scores []float64, total float64, rng *rand.Rand) *step.Step {
	if total <= 0 {
		return items[rng.Intn(len(items))]
	}
	r := rng.Float64() * total
	var cumulative float64
	for i, sc := range scores {
		cumulative += sc
		if r < cumulative {
			return items[i]
		}
	}
	return items[len(items)-1]
}
