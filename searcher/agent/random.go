package agent

import (
	"quarto/experiments/metrics"
	"quarto/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal turn.
// Agents with the same seed play the same moves. Not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State, _ bool) (game.State, bool, metrics.SearchMetric) {
	turns := game.NewTurn(state).LegalSuccessors()
	if len(turns) == 0 {
		return game.State{}, false, metrics.SearchMetric{}
	}
	return turns[a.rng.Intn(len(turns))].State(), true, metrics.SearchMetric{}
}
