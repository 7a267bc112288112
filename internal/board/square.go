// Package board models the chessboard: squares, colored pieces with
// stable identities, and the movement rules that govern them.
package board

// Square indexes one of the 64 board squares, rank-major from a1.
// a1 is 0, h1 is 7, and h8 is 63. The value 64 (NoSquare) marks the
// absence of a square.
type Square uint8

// NoSquare is the out-of-board sentinel.
const NoSquare Square = 64

// Named squares, rank by rank.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// NewSquare builds a square from zero-based file and rank coordinates.
func NewSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

// File reports the zero-based column, 0 for the a-file through 7 for h.
func (sq Square) File() int {
	return int(sq % 8)
}

// Rank reports the zero-based row, 0 for rank 1 through 7 for rank 8.
func (sq Square) Rank() int {
	return int(sq / 8)
}

// IsValid reports whether sq lies on the board.
func (sq Square) IsValid() bool {
	return sq <= H8
}

// RelativeRank is the rank as seen by c: for Black the board is
// flipped, so rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	r := sq.Rank()
	if c == Black {
		r = 7 - r
	}
	return r
}

// String renders the square in algebraic notation ("e4"), or "-" for
// NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}
