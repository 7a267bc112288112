package board

import (
	"fmt"
	"strings"
)

// PieceID is a stable handle to a live piece. IDs are assigned once at
// placement and never reused, so a handle stays valid until its piece is
// removed, regardless of how other pieces come and go.
type PieceID int

// NoPieceID is the zero PieceID; no live piece ever carries it.
const NoPieceID PieceID = 0

// PlacedPiece is one live piece on the board.
type PlacedPiece struct {
	ID     PieceID
	Piece  Piece
	Square Square
}

// Board owns the authoritative set of live pieces. Positions are unique:
// no two live pieces ever share a square.
type Board struct {
	pieces []PlacedPiece
	nextID PieceID
}

// NewBoard returns a board with the standard starting layout: back ranks
// R N B Q K B N R with the queen on the d-file, pawns in front, White on
// ranks 1-2 and Black on ranks 7-8.
func NewBoard() *Board {
	b := &Board{nextID: 1}

	setup := func(c Color, backRank, pawnRank int) {
		order := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for file, pt := range order {
			b.mustPlace(NewPiece(pt, c), NewSquare(file, backRank))
		}
		for file := 0; file < 8; file++ {
			b.mustPlace(NewPiece(Pawn, c), NewSquare(file, pawnRank))
		}
	}

	setup(White, 0, 1)
	setup(Black, 7, 6)
	return b
}

func (b *Board) mustPlace(p Piece, sq Square) {
	if _, err := b.Place(p, sq); err != nil {
		panic(err)
	}
}

// Place adds a piece to the board and returns its handle. It fails if the
// square is invalid, the piece is NoPiece, or the square is occupied.
func (b *Board) Place(p Piece, sq Square) (PieceID, error) {
	if !sq.IsValid() {
		return NoPieceID, fmt.Errorf("place %v: invalid square", p)
	}
	if p == NoPiece {
		return NoPieceID, fmt.Errorf("place on %v: no piece", sq)
	}
	if occ, ok := b.PieceAt(sq); ok {
		return NoPieceID, fmt.Errorf("place %v on %v: occupied by %v", p, sq, occ.Piece)
	}
	id := b.nextID
	b.nextID++
	b.pieces = append(b.pieces, PlacedPiece{ID: id, Piece: p, Square: sq})
	return id, nil
}

// PieceAt returns the live piece on the given square, if any.
func (b *Board) PieceAt(sq Square) (PlacedPiece, bool) {
	for _, pp := range b.pieces {
		if pp.Square == sq {
			return pp, true
		}
	}
	return PlacedPiece{}, false
}

// ByID returns the live piece with the given handle, if any.
func (b *Board) ByID(id PieceID) (PlacedPiece, bool) {
	for _, pp := range b.pieces {
		if pp.ID == id {
			return pp, true
		}
	}
	return PlacedPiece{}, false
}

// MoveTo updates the position of the piece with the given handle. It fails
// if the handle is dead, the square is invalid, or another piece occupies
// the target.
func (b *Board) MoveTo(id PieceID, sq Square) error {
	if !sq.IsValid() {
		return fmt.Errorf("move piece %d: invalid square", id)
	}
	if occ, ok := b.PieceAt(sq); ok && occ.ID != id {
		return fmt.Errorf("move piece %d to %v: occupied by %v", id, sq, occ.Piece)
	}
	for i := range b.pieces {
		if b.pieces[i].ID == id {
			b.pieces[i].Square = sq
			return nil
		}
	}
	return fmt.Errorf("move piece %d: no such piece", id)
}

// Remove deletes the piece with the given handle from the live set and
// reports whether it was present.
func (b *Board) Remove(id PieceID) bool {
	for i := range b.pieces {
		if b.pieces[i].ID == id {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			return true
		}
	}
	return false
}

// Pieces returns a snapshot of all live pieces. The slice is a copy; later
// board mutation does not affect it.
func (b *Board) Pieces() []PlacedPiece {
	out := make([]PlacedPiece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// Len returns the number of live pieces.
func (b *Board) Len() int {
	return len(b.pieces)
}

// String renders the board as an ASCII grid, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if pp, ok := b.PieceAt(NewSquare(file, rank)); ok {
				sb.WriteString(pp.Piece.String() + " ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
