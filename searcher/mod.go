package searcher

// Leaf scores, from the maximizer's perspective

const Win = 1.0   // Maximizer completed a line
const Loss = -Win // Minimizer completed a line
const Draw = 0.0  // Full board, or search horizon without heuristic

// State is a game position the searcher can explore. Implementations must be
// immutable values: LegalSuccessors returns fresh children on every call and
// never changes its receiver.
type State[S any] interface {
	// IsTerminal reports whether the game is over
	IsTerminal() bool
	// HasWinningLine reports whether the game was won by the last move
	HasWinningLine() bool
	// LegalSuccessors returns the positions one ply ahead in a deterministic order
	LegalSuccessors() []S
}

// terminalScore scores a finished game. The side that moved into state is
// the opposite of the side to move at state.
func terminalScore[S State[S]](state S, maximizing bool) float64 {
	if !state.HasWinningLine() {
		return Draw
	}
	if maximizing {
		return Loss
	}
	return Win
}

func neutral[S any](S, bool) float64 {
	return Draw
}
