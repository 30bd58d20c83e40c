package game

import "strings"

const (
	BoardSide = 4
	NumCells  = BoardSide * BoardSide
)

// Board holds the placed pieces in row-major order, NoPiece for empty cells.
type Board [NumCells]Piece

// Line is the four cell indices of a row, column or diagonal.
type Line [BoardSide]int

// Lines lists the 10 lines that can win: 4 rows, 4 columns, 2 diagonals.
var Lines = [...]Line{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{8, 9, 10, 11},
	{12, 13, 14, 15},
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
	{0, 5, 10, 15},
	{3, 6, 9, 12},
}

// Shared returns the attributes shared by the line's pieces; zero if any
// cell is empty.
func (b *Board) Shared(l Line) Attribute {
	return Shared(b[l[0]], b[l[1]], b[l[2]], b[l[3]])
}

func (b *Board) HasWinningLine() bool {
	for _, l := range Lines {
		if b.Shared(l) != 0 {
			return true
		}
	}
	return false
}

func (b *Board) WinningLines() []Line {
	var won []Line
	for _, l := range Lines {
		if b.Shared(l) != 0 {
			won = append(won, l)
		}
	}
	return won
}

func (b *Board) IsFull() bool {
	for _, p := range b {
		if p == NoPiece {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	cells := make([]int, 0, NumCells)
	for i, p := range b {
		if p == NoPiece {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSide; row++ {
		for col := 0; col < BoardSide; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			p := b[row*BoardSide+col]
			if p == NoPiece {
				sb.WriteString("..")
			} else {
				sb.WriteString(hex(p))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func hex(p Piece) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[p>>4], digits[p&0xf]})
}
