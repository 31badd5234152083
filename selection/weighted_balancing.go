package selection

import (
	"fmt"
	"math/rand"

	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/step"
)

// rescueEpsilon is the small positive constant added on top of the
// magnitude of the most negative score when rescuing WeightedBalancing
// scores into strictly-positive territory (spec §4.E).
const rescueEpsilon = 1e-9

// WeightedBalancing combines a step's weight with how under-represented it
// is in the suite's execution history so far (spec §4.E). Each step's score
// is its normalized weight minus its normalized execution count; if any
// score would be non-positive, every score is shifted up by
// |min score| + rescueEpsilon before proportional selection, guaranteeing
// strictly positive scores for every candidate.
type WeightedBalancing struct{}

// Choose implements Algorithm.
func (WeightedBalancing) Choose(enabled []*step.Step, h *history.History, rng *rand.Rand) (*step.Step, error) {
	if err := requireNonEmpty(enabled); err != nil {
		return nil, err
	}

	weights := make([]float64, len(enabled))
	var totalWeight float64
	for i, s := range enabled {
		w, err := s.CurrentWeight()
		if err != nil {
			return nil, fmt.Errorf("selection: evaluating weight for step %q: %w", s.Name, err)
		}
		weights[i] = w
		totalWeight += w
	}

	freq := h.StepFrequency()
	totalSteps := h.TotalSteps()

	scores := make([]float64, len(enabled))
	minScore := 0.0
	for i, s := range enabled {
		normWeight := 0.0
		if totalWeight > 0 {
			normWeight = weights[i] / totalWeight
		}
		normCount := 0.0
		if totalSteps > 0 {
			normCount = float64(freq[s.Name]) / float64(totalSteps)
		}
		score := normWeight - normCount
		scores[i] = score
		if i == 0 || score < minScore {
			minScore = score
		}
	}

	if minScore <= 0 {
		shift := -minScore + rescueEpsilon
		for i := range scores {
			scores[i] += shift
		}
	}

	var total float64
	for _, sc := range scores {
		total += sc
	}
	return pickProportional(enabled, scores, total, rng), nil
}
