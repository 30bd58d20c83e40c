package game

// Threat is the horizon score of a position where the side to move is known
// to win (or lose) on its next ply. It stays below a proven win so search
// always prefers a real result.
const Threat = 0.5

// EvaluateThreats scores a non-terminal horizon position between -1 and 1
// from the maximizer's perspective by looking one ply ahead:
//   - placing: the side to move wins if the piece in hand completes a line
//   - choosing: the side to move loses if every remaining piece completes a line
func EvaluateThreats(s State, maximizing bool) float64 {
	side := 1.0
	if !maximizing {
		side = -1.0
	}

	if p, ok := s.PieceInHand(); ok {
		if s.Completes(p) {
			return side * Threat
		}
		return 0
	}

	remaining := s.Remaining()
	if len(remaining) == 0 {
		return 0
	}
	for _, p := range remaining {
		if !s.Completes(p) {
			return 0
		}
	}
	return -side * Threat
}

// Completes reports whether placing p on some empty cell would complete a
// winning line.
func (s State) Completes(p Piece) bool {
	for _, l := range Lines {
		empty := -1
		shared := Attribute(p)
		for _, cell := range l {
			if s.board[cell] == NoPiece {
				if empty >= 0 {
					shared = 0
					break
				}
				empty = cell
				continue
			}
			shared &= Attribute(s.board[cell])
		}
		if empty >= 0 && shared != 0 {
			return true
		}
	}
	return false
}
