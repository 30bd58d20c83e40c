package game

// Turn is a position at the start of a player's turn. A turn places the
// piece in hand and, unless that ends the game, chooses the opponent's
// piece. A turn that starts without a piece in hand, as the opening does,
// only chooses.
//
// Turns alternate strictly between the players, so a Turn can be searched
// with plain minimax where a State's sub-moves cannot.
type Turn struct {
	state State
}

func NewTurn(s State) Turn {
	return Turn{state: s}
}

func (t Turn) State() State {
	return t.state
}

func (t Turn) IsTerminal() bool {
	return t.state.IsTerminal()
}

func (t Turn) HasWinningLine() bool {
	return t.state.HasWinningLine()
}

// LegalSuccessors returns every position reachable in one turn, ordered by
// cell and then by the piece handed over. A placement that ends the game is
// a successor on its own.
func (t Turn) LegalSuccessors() []Turn {
	if t.state.IsTerminal() {
		return nil
	}

	if t.state.Phase() == ChoosePhase {
		children := t.state.LegalSuccessors()
		turns := make([]Turn, len(children))
		for i, child := range children {
			turns[i] = Turn{state: child}
		}
		return turns
	}

	var turns []Turn
	for _, placed := range t.state.LegalSuccessors() {
		if placed.IsTerminal() {
			turns = append(turns, Turn{state: placed})
			continue
		}
		for _, chosen := range placed.LegalSuccessors() {
			turns = append(turns, Turn{state: chosen})
		}
	}
	return turns
}

func (t Turn) String() string {
	return t.state.String()
}

// EvaluateTurn scores a horizon turn with EvaluateThreats. The side to move
// places first, so a completing piece in hand favours it.
func EvaluateTurn(t Turn, maximizing bool) float64 {
	return EvaluateThreats(t.state, maximizing)
}
