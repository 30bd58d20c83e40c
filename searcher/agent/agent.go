package agent

import (
	"quarto/experiments/metrics"
	"quarto/game"
)

type Agent interface {
	// FindMove plays a whole turn from state and returns the resulting state, with performance
	// metrics (if collected). It returns false only if state is terminal.
	FindMove(state game.State, maximizing bool) (game.State, bool, metrics.SearchMetric)
}
