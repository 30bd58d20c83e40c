package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// drawBoard is a full board on which no line shares an attribute.
var drawBoard = Board{
	NewPiece(Big, Blue, Solid, Sphere), NewPiece(Big, Blue, Hollow, Sphere), NewPiece(Big, Red, Hollow, Cube), NewPiece(Small, Red, Solid, Cube),
	NewPiece(Small, Blue, Solid, Cube), NewPiece(Big, Blue, Hollow, Cube), NewPiece(Big, Red, Hollow, Sphere), NewPiece(Big, Blue, Solid, Cube),
	NewPiece(Small, Red, Hollow, Sphere), NewPiece(Big, Red, Solid, Sphere), NewPiece(Small, Blue, Hollow, Sphere), NewPiece(Small, Red, Hollow, Cube),
	NewPiece(Small, Blue, Hollow, Cube), NewPiece(Small, Blue, Solid, Sphere), NewPiece(Big, Red, Solid, Cube), NewPiece(Small, Red, Solid, Sphere),
}

// forcedGiftBoard is a full board whose only winning line runs through
// cell 15.
var forcedGiftBoard = Board{
	NewPiece(Small, Blue, Solid, Sphere), NewPiece(Small, Blue, Hollow, Sphere), NewPiece(Big, Red, Solid, Sphere), NewPiece(Small, Blue, Hollow, Cube),
	NewPiece(Big, Red, Solid, Cube), NewPiece(Small, Red, Solid, Sphere), NewPiece(Big, Blue, Solid, Cube), NewPiece(Small, Red, Hollow, Sphere),
	NewPiece(Big, Blue, Hollow, Sphere), NewPiece(Big, Red, Hollow, Sphere), NewPiece(Big, Blue, Solid, Sphere), NewPiece(Small, Blue, Solid, Cube),
	NewPiece(Big, Red, Hollow, Cube), NewPiece(Big, Blue, Hollow, Cube), NewPiece(Small, Red, Hollow, Cube), NewPiece(Small, Red, Solid, Cube),
}

func remainingExcept(used ...Piece) []Piece {
	var remaining []Piece
	for _, p := range AllPieces() {
		taken := false
		for _, u := range used {
			taken = taken || u == p
		}
		if !taken {
			remaining = append(remaining, p)
		}
	}
	return remaining
}

// blueRowState has three blue pieces on the bottom row, a blue piece in hand
// and cell 15 empty.
func blueRowState(t *testing.T) State {
	t.Helper()
	var board Board
	board[12] = NewPiece(Big, Blue, Hollow, Cube)
	board[13] = NewPiece(Small, Blue, Solid, Sphere)
	board[14] = NewPiece(Big, Blue, Solid, Cube)
	hand := NewPiece(Small, Blue, Hollow, Sphere)

	s, err := NewState(board, remainingExcept(board[12], board[13], board[14], hand), hand)
	require.NoError(t, err)
	return s
}

func requirePartition(t *testing.T, s State) {
	t.Helper()
	counts := make(map[Piece]int)
	for _, p := range s.Board() {
		if p != NoPiece {
			counts[p]++
		}
	}
	if p, ok := s.PieceInHand(); ok {
		counts[p]++
	}
	for _, p := range s.Remaining() {
		counts[p]++
	}
	require.Len(t, counts, NumPieces, "Every piece should be accounted for")
	for p, n := range counts {
		require.Equal(t, 1, n, "Piece %s should be accounted for exactly once", p)
	}
	require.NoError(t, s.Validate())
}

func TestInitial(t *testing.T) {
	s := Initial()

	require.Equal(t, Board{}, s.Board(), "Board should be empty")
	require.Equal(t, AllPieces(), s.Remaining(), "Every piece should remain")
	_, ok := s.PieceInHand()
	require.False(t, ok, "No piece should be in hand")
	require.Equal(t, ChoosePhase, s.Phase())
	require.False(t, s.IsTerminal())
	requirePartition(t, s)
}

func TestLegalSuccessors(t *testing.T) {
	t.Run("choose phase yields one child per remaining piece in id order", func(t *testing.T) {
		s := Initial()

		children := s.LegalSuccessors()

		require.Len(t, children, NumPieces)
		for i, child := range children {
			p, ok := child.PieceInHand()
			require.True(t, ok, "Child should hold the chosen piece")
			require.Equal(t, PieceByID(i), p, "Children should follow ascending piece id")
			require.False(t, child.IsRemaining(p), "Chosen piece should leave the remaining set")
			require.Len(t, child.Remaining(), NumPieces-1)
			require.Equal(t, s.Board(), child.Board(), "Choosing should not touch the board")
			requirePartition(t, child)
		}
	})

	t.Run("place phase yields one child per empty cell in index order", func(t *testing.T) {
		s, err := Initial().Choose(PieceByID(5))
		require.NoError(t, err)

		children := s.LegalSuccessors()

		require.Len(t, children, NumCells)
		for cell, child := range children {
			require.Equal(t, PieceByID(5), child.Cell(cell), "Child should place the piece on cell %d", cell)
			_, ok := child.PieceInHand()
			require.False(t, ok, "Placing should empty the hand")
			require.Equal(t, ChoosePhase, child.Phase())
			requirePartition(t, child)
		}
	})

	t.Run("placing the last piece leaves nothing in hand", func(t *testing.T) {
		board := drawBoard
		last := board[15]
		board[15] = NoPiece
		s, err := NewState(board, nil, last)
		require.NoError(t, err)

		children := s.LegalSuccessors()

		require.Len(t, children, 1)
		_, ok := children[0].PieceInHand()
		require.False(t, ok)
		require.Empty(t, children[0].Remaining())
		require.True(t, children[0].IsTerminal())
		requirePartition(t, children[0])
	})

	t.Run("each call returns an independent sequence", func(t *testing.T) {
		s := Initial()

		first := s.LegalSuccessors()
		second := s.LegalSuccessors()
		first[0] = State{}

		require.Equal(t, Initial(), s, "Parent should not change")
		require.Equal(t, Initial().LegalSuccessors(), second)
	})

	t.Run("terminal state has no successors", func(t *testing.T) {
		s, err := blueRowState(t).Place(15)
		require.NoError(t, err)

		require.Empty(t, s.LegalSuccessors())
	})
}

func TestReachableStates(t *testing.T) {
	// Walk a few plies deep, always following the first and last child.
	frontier := []State{Initial()}
	for ply := 0; ply < 12; ply++ {
		var next []State
		for _, s := range frontier {
			requirePartition(t, s)
			children := s.LegalSuccessors()
			if !s.IsTerminal() {
				require.NotEmpty(t, children, "Non-terminal state should have successors")
			}
			if len(children) > 0 {
				next = append(next, children[0], children[len(children)-1])
			}
		}
		frontier = next
	}
}

func TestIsTerminal(t *testing.T) {
	t.Run("completing a row of shared attribute wins", func(t *testing.T) {
		s := blueRowState(t)
		require.False(t, s.IsTerminal())

		s, err := s.Place(15)
		require.NoError(t, err)

		require.True(t, s.IsTerminal())
		require.True(t, s.HasWinningLine())
		require.Equal(t, []Line{{12, 13, 14, 15}}, s.WinningLines())
	})

	t.Run("full board without shared attribute is a draw", func(t *testing.T) {
		s, err := NewState(drawBoard, nil, NoPiece)
		require.NoError(t, err)

		require.True(t, s.IsTerminal())
		require.False(t, s.HasWinningLine())
		require.True(t, s.IsFull())
		require.Empty(t, s.Remaining())
		_, ok := s.PieceInHand()
		require.False(t, ok)
	})

	t.Run("every line is checked", func(t *testing.T) {
		for _, l := range Lines {
			var board Board
			blues := []Piece{
				NewPiece(Big, Blue, Hollow, Cube),
				NewPiece(Small, Blue, Solid, Sphere),
				NewPiece(Big, Blue, Solid, Cube),
				NewPiece(Small, Blue, Hollow, Sphere),
			}
			for i, cell := range l {
				board[cell] = blues[i]
			}
			s, err := NewState(board, remainingExcept(blues...), NoPiece)
			require.NoError(t, err)

			require.True(t, s.IsTerminal(), "Line %v should win", l)
		}
	})

	t.Run("winning stays terminal as more pieces are placed", func(t *testing.T) {
		s, err := blueRowState(t).Place(15)
		require.NoError(t, err)
		board := s.Board()

		for _, p := range s.Remaining() {
			for cell := range board {
				if board[cell] == NoPiece {
					board[cell] = p
					break
				}
			}
			grown, err := NewState(board, remainingExcept(boardPieces(board)...), NoPiece)
			require.NoError(t, err)
			require.True(t, grown.IsTerminal())
		}
	})
}

func boardPieces(b Board) []Piece {
	var placed []Piece
	for _, p := range b {
		if p != NoPiece {
			placed = append(placed, p)
		}
	}
	return placed
}

func TestChooseAndPlace(t *testing.T) {
	t.Run("choosing while holding a piece", func(t *testing.T) {
		s, err := Initial().Choose(PieceByID(0))
		require.NoError(t, err)

		_, err = s.Choose(PieceByID(1))
		require.ErrorIs(t, err, ErrWrongPhase)
	})

	t.Run("choosing an unavailable piece", func(t *testing.T) {
		s, err := Initial().Choose(PieceByID(0))
		require.NoError(t, err)
		s, err = s.Place(0)
		require.NoError(t, err)

		_, err = s.Choose(PieceByID(0))
		require.ErrorIs(t, err, ErrPieceUnavailable)
		_, err = s.Choose(Piece(Big | Small))
		require.ErrorIs(t, err, ErrPieceUnavailable)
	})

	t.Run("placing with an empty hand", func(t *testing.T) {
		_, err := Initial().Place(0)
		require.ErrorIs(t, err, ErrWrongPhase)
	})

	t.Run("placing off the board or on an occupied cell", func(t *testing.T) {
		s := blueRowState(t)

		_, err := s.Place(16)
		require.ErrorIs(t, err, ErrCellOutOfRange)
		_, err = s.Place(12)
		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("moving after the game is over", func(t *testing.T) {
		s, err := blueRowState(t).Place(15)
		require.NoError(t, err)

		_, err = s.Choose(s.Remaining()[0])
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("checked moves agree with successors", func(t *testing.T) {
		s, err := Initial().Choose(PieceByID(3))
		require.NoError(t, err)
		require.Equal(t, Initial().LegalSuccessors()[3], s)

		placed, err := s.Place(7)
		require.NoError(t, err)
		require.Equal(t, s.LegalSuccessors()[7], placed)
	})
}

func TestNewState(t *testing.T) {
	t.Run("missing pieces", func(t *testing.T) {
		_, err := NewState(Board{}, AllPieces()[1:], NoPiece)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("piece both placed and remaining", func(t *testing.T) {
		board := Board{PieceByID(0)}
		_, err := NewState(board, AllPieces(), NoPiece)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("piece both in hand and remaining", func(t *testing.T) {
		_, err := NewState(Board{}, AllPieces(), PieceByID(2))
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("mask that is not a piece", func(t *testing.T) {
		board := Board{Piece(Big | Small | Blue | Hollow)}
		_, err := NewState(board, AllPieces(), NoPiece)
		require.ErrorIs(t, err, ErrInvalidState)
	})
}
