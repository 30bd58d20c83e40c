package game

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	ErrGameOver         = errors.New("game is over")
	ErrWrongPhase       = errors.New("move does not match turn phase")
	ErrPieceUnavailable = errors.New("piece is not available")
	ErrCellOutOfRange   = errors.New("cell out of range")
	ErrCellOccupied     = errors.New("cell is occupied")
	ErrInvalidState     = errors.New("invalid state")
)

type Phase int

const (
	// ChoosePhase: the side to move picks the piece the opponent has to place.
	ChoosePhase Phase = iota
	// PlacePhase: the side to move places the piece in hand.
	PlacePhase
)

func (p Phase) String() string {
	if p == PlacePhase {
		return "place"
	}
	return "choose"
}

const allPieces uint16 = 1<<NumPieces - 1

// State is one Quarto position. It is a plain value: copying a State copies
// the whole position, and no method mutates its receiver.
type State struct {
	board     Board
	remaining uint16 // bit i set if piece with id i is neither placed nor in hand
	inHand    Piece
}

// Initial returns the starting position: empty board, every piece
// available and nothing in hand.
func Initial() State {
	return State{remaining: allPieces}
}

// NewState builds an arbitrary position and checks that remaining pieces,
// the piece in hand and the placed pieces account for every piece once.
func NewState(board Board, remaining []Piece, inHand Piece) (State, error) {
	s := State{board: board, inHand: inHand}
	for _, p := range remaining {
		if !p.IsValid() {
			return State{}, fmt.Errorf("remaining piece %#02x: %w", uint8(p), ErrInvalidState)
		}
		bit := uint16(1) << p.ID()
		if s.remaining&bit != 0 {
			return State{}, fmt.Errorf("piece %s listed twice as remaining: %w", p, ErrInvalidState)
		}
		s.remaining |= bit
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// Validate reports whether the state honours the piece partition invariant.
func (s State) Validate() error {
	seen := s.remaining
	claim := func(p Piece, where string) error {
		if !p.IsValid() {
			return fmt.Errorf("%s holds %#02x, not a piece: %w", where, uint8(p), ErrInvalidState)
		}
		bit := uint16(1) << p.ID()
		if seen&bit != 0 {
			return fmt.Errorf("%s holds %s which is already accounted for: %w", where, p, ErrInvalidState)
		}
		seen |= bit
		return nil
	}

	for i, p := range s.board {
		if p == NoPiece {
			continue
		}
		if err := claim(p, fmt.Sprintf("cell %d", i)); err != nil {
			return err
		}
	}
	if s.inHand != NoPiece {
		if err := claim(s.inHand, "hand"); err != nil {
			return err
		}
	}
	if seen != allPieces {
		return fmt.Errorf("%d of %d pieces accounted for: %w", bits.OnesCount16(seen), NumPieces, ErrInvalidState)
	}
	return nil
}

func (s State) Board() Board {
	return s.board
}

func (s State) Cell(i int) Piece {
	return s.board[i]
}

func (s State) PieceInHand() (Piece, bool) {
	return s.inHand, s.inHand != NoPiece
}

// Remaining returns the pieces neither placed nor in hand, in id order.
func (s State) Remaining() []Piece {
	remaining := make([]Piece, 0, bits.OnesCount16(s.remaining))
	for set := s.remaining; set != 0; set &= set - 1 {
		remaining = append(remaining, pieces[bits.TrailingZeros16(set)])
	}
	return remaining
}

func (s State) IsRemaining(p Piece) bool {
	return p.IsValid() && s.remaining&(1<<p.ID()) != 0
}

func (s State) Phase() Phase {
	if s.inHand == NoPiece {
		return ChoosePhase
	}
	return PlacePhase
}

func (s State) HasWinningLine() bool {
	return s.board.HasWinningLine()
}

func (s State) WinningLines() []Line {
	return s.board.WinningLines()
}

func (s State) IsFull() bool {
	return s.board.IsFull()
}

// Ply returns the number of sub-moves played to reach s: every placed
// piece was chosen and placed, the piece in hand only chosen.
func (s State) Ply() int {
	ply := 2 * (NumCells - len(s.board.EmptyCells()))
	if s.inHand != NoPiece {
		ply++
	}
	return ply
}

// IsTerminal reports whether the game is over, by a winning line or a
// full board.
func (s State) IsTerminal() bool {
	return s.board.HasWinningLine() || s.board.IsFull()
}

// LegalSuccessors returns every state reachable in one ply: one per
// remaining piece (ascending id) in the choose phase, one per empty cell
// (ascending index) in the place phase. Each call builds a new slice.
func (s State) LegalSuccessors() []State {
	if s.IsTerminal() {
		return nil
	}

	if s.inHand == NoPiece {
		children := make([]State, 0, bits.OnesCount16(s.remaining))
		for set := s.remaining; set != 0; set &= set - 1 {
			children = append(children, s.choose(bits.TrailingZeros16(set)))
		}
		return children
	}

	children := make([]State, 0, NumCells)
	for cell, p := range s.board {
		if p == NoPiece {
			children = append(children, s.place(cell))
		}
	}
	return children
}

// Choose hands p to the opponent.
func (s State) Choose(p Piece) (State, error) {
	if s.IsTerminal() {
		return State{}, ErrGameOver
	}
	if s.inHand != NoPiece {
		return State{}, fmt.Errorf("choose %s while holding %s: %w", p, s.inHand, ErrWrongPhase)
	}
	if !s.IsRemaining(p) {
		return State{}, fmt.Errorf("choose %s: %w", p, ErrPieceUnavailable)
	}
	return s.choose(p.ID()), nil
}

// Place puts the piece in hand on the given cell.
func (s State) Place(cell int) (State, error) {
	if s.IsTerminal() {
		return State{}, ErrGameOver
	}
	if s.inHand == NoPiece {
		return State{}, fmt.Errorf("place on cell %d with empty hand: %w", cell, ErrWrongPhase)
	}
	if cell < 0 || cell >= NumCells {
		return State{}, fmt.Errorf("place on cell %d: %w", cell, ErrCellOutOfRange)
	}
	if s.board[cell] != NoPiece {
		return State{}, fmt.Errorf("place on cell %d: %w", cell, ErrCellOccupied)
	}
	return s.place(cell), nil
}

func (s State) choose(id int) State {
	s.inHand = pieces[id]
	s.remaining &^= 1 << id
	return s
}

func (s State) place(cell int) State {
	s.board[cell] = s.inHand
	s.inHand = NoPiece
	return s
}

func (s State) String() string {
	var sb strings.Builder
	sb.WriteString(s.board.String())
	fmt.Fprintf(&sb, "phase=%s hand=%s remaining=%d", s.Phase(), s.inHand, bits.OnesCount16(s.remaining))
	return sb.String()
}
