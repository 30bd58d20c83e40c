package engine

import (
	"quarto/experiments/metrics"
	"quarto/game"
)

// MaxPlies bounds a game: every piece is chosen once and placed once.
const MaxPlies = 2 * game.NumPieces

// MaxTurns bounds a game: the opening choice, then one turn per placement.
const MaxTurns = game.NumPieces + 1

type Role int

const (
	NoWinner Role = iota
	Maximizer
	Minimizer
)

func (r Role) String() string {
	switch r {
	case Maximizer:
		return "max"
	case Minimizer:
		return "min"
	default:
		return ""
	}
}

type Outcome struct {
	Winner Role // Role of the agent that completed a line
	Turns  int
	Plies  int
	Final  game.State
}

type Engine interface {
	// Run plays a game till a line is completed or the board is full
	Run() (outcome Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
