package game

import "strings"

// Attribute is one physical property of a piece. Attributes come in four
// complementary pairs and every piece carries exactly one of each pair.
type Attribute uint8

const (
	Big Attribute = 1 << iota
	Small
	Blue
	Red
	Hollow
	Solid
	Cube
	Sphere
)

const NumPieces = 16

// Piece is the attribute mask of a game piece. NoPiece marks an empty cell
// or an empty hand.
type Piece uint8

const NoPiece Piece = 0

var attributeNames = [...]struct {
	attr Attribute
	name string
}{
	{Big, "big"}, {Small, "small"},
	{Blue, "blue"}, {Red, "red"},
	{Hollow, "hollow"}, {Solid, "solid"},
	{Cube, "cube"}, {Sphere, "sphere"},
}

// pieces lists all pieces in ascending mask order; a piece's id is its index.
var pieces [NumPieces]Piece

// ids maps a mask back to its id, -1 for masks that are not pieces
var ids [256]int8

func init() {
	for i := range ids {
		ids[i] = -1
	}
	n := 0
	for _, shape := range []Attribute{Cube, Sphere} {
		for _, fill := range []Attribute{Hollow, Solid} {
			for _, color := range []Attribute{Blue, Red} {
				for _, size := range []Attribute{Big, Small} {
					p := Piece(shape | fill | color | size)
					pieces[n] = p
					ids[p] = int8(n)
					n++
				}
			}
		}
	}
}

// NewPiece combines one attribute of each pair into a piece.
func NewPiece(size, color, fill, shape Attribute) Piece {
	return Piece(size | color | fill | shape)
}

// AllPieces returns the 16 pieces in id order.
func AllPieces() []Piece {
	all := make([]Piece, NumPieces)
	copy(all, pieces[:])
	return all
}

// PieceByID returns the piece with the given id.
func PieceByID(id int) Piece {
	return pieces[id]
}

// ID returns the piece's index in AllPieces, or -1 if p is not a valid piece.
func (p Piece) ID() int {
	return int(ids[p])
}

func (p Piece) IsValid() bool {
	return ids[p] >= 0
}

func (p Piece) Has(attr Attribute) bool {
	return Attribute(p)&attr != 0
}

func (p Piece) String() string {
	if p == NoPiece {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, a := range attributeNames {
		if p.Has(a.attr) {
			names = append(names, a.name)
		}
	}
	return strings.Join(names, "-")
}

// Shared returns the attributes common to every given piece. Any empty
// piece in the group yields no shared attributes.
func Shared(group ...Piece) Attribute {
	if len(group) == 0 {
		return 0
	}
	shared := Attribute(0xff)
	for _, p := range group {
		shared &= Attribute(p)
	}
	return shared
}
