package selection

import (
	"math/rand"

	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/step"
)

// Random picks uniformly among the enabled steps.
type Random struct{}

// Choose implements Algorithm.
func (Random) Choose(enabled []*step.Step, _ *history.History, rng *rand.Rand) (*step.Step, error) {
	if err := requireNonEmpty(enabled); err != nil {
		return nil, err
	}
	return enabled[rng.Intn(len(enabled))], nil
}
