package agent

import (
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax[game.Turn]
}

// NewMinimaxAgent returns an agent that plays the turn selected by minimax.
// The searcher's depth counts turns.
func NewMinimaxAgent(minimax *searcher.Minimax[game.Turn]) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state game.State, maximizing bool) (game.State, bool, metrics.SearchMetric) {
	next, ok, metric := a.minimax.FindMove(game.NewTurn(state), maximizing)
	return next.State(), ok, metric
}
