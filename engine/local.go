package engine

import (
	"fmt"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithValidation checks the piece partition invariant after every turn.
func WithValidation() Option {
	return func(e *Local) {
		e.validate = true
	}
}

// WithAgentIDs tags move metrics with the given agent config IDs.
func WithAgentIDs(first, second int) Option {
	return func(e *Local) {
		e.ids = [2]int{first, second}
	}
}

// WithOpening plays the first turns of every game with a random agent
// seeded by seed. Opening turns count toward the seat order but produce
// no move metrics.
func WithOpening(turns int, seed uint64) Option {
	return func(e *Local) {
		if turns > 0 {
			e.openingTurns = turns
			e.openingSeed = seed
		}
	}
}

// Local plays two in-process agents against each other in Quarto turn
// order: the first agent chooses a piece, then each turn places the piece
// in hand and chooses the next one for the opponent. The first agent is
// the maximizer, the second the minimizer.
type Local struct {
	Agents       [2]agent.Agent
	ids          [2]int
	validate     bool
	openingTurns int
	openingSeed  uint64
}

func LocalEngine(agents [2]agent.Agent, options ...Option) *Local {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent %d is nil", i))
		}
	}

	e := &Local{
		Agents: agents,
		ids:    [2]int{1, 2},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop from the initial position until the
// game is over. Every call plays a new game.
func (e *Local) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	log.Info().Msgf("agent %d is starting as maximizer", e.ids[0])

	var opening agent.Agent
	if e.openingTurns > 0 {
		opening = agent.NewRandomAgent(e.openingSeed)
	}

	state := game.Initial()
	turn := 0
	var moveMetrics []metrics.MoveMetric
	for !state.IsTerminal() {
		if turn >= MaxTurns {
			panic(fmt.Sprintf("game not over after %d turns", turn))
		}
		seat := turn % 2
		maximizing := seat == 0

		player := e.Agents[seat]
		if turn < e.openingTurns {
			player = opening
		}

		next, ok, searchMetric := player.FindMove(state, maximizing)
		if !ok {
			panic(fmt.Sprintf("agent %d found no move in a live position", e.ids[seat]))
		}
		if !isTurn(state, next) {
			panic(fmt.Sprintf("agent %d played an illegal turn", e.ids[seat]))
		}
		if e.validate {
			if err := next.Validate(); err != nil {
				panic(fmt.Sprintf("turn %d: %v", turn+1, err))
			}
		}

		turn++
		if turn > e.openingTurns {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Turn:         turn,
				Ply:          next.Ply(),
				Agent:        e.ids[seat],
				Maximizing:   maximizing,
				SearchMetric: searchMetric,
			})
		}
		log.Debug().Msgf("turn %d: agent %d -> ply %d, %d pieces remaining", turn, e.ids[seat], next.Ply(), len(next.Remaining()))

		state = next
	}

	outcome := Outcome{Winner: NoWinner, Turns: turn, Plies: state.Ply(), Final: state}
	if state.HasWinningLine() {
		// The last turn placed the completing piece.
		outcome.Winner = Maximizer
		if turn%2 == 0 {
			outcome.Winner = Minimizer
		}
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     outcome.Winner.String(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalTurns: outcome.Turns,
		TotalPlies: outcome.Plies,
	}

	if outcome.Winner == NoWinner {
		log.Info().Msgf("game ended in a draw after %d turns", turn)
	} else {
		log.Info().Msgf("game won by %s after %d turns", outcome.Winner, turn)
	}
	return outcome, gameMetric, moveMetrics
}

// isTurn reports whether next is reachable from state in one turn.
func isTurn(state, next game.State) bool {
	for _, child := range game.NewTurn(state).LegalSuccessors() {
		if child.State() == next {
			return true
		}
	}
	return false
}
