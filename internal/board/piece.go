package board

import "strings"

// Color identifies a side, White or Black. NoColor is the answer for
// questions asked about an empty square.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

var colorNames = [...]string{"White", "Black", "NoColor"}

// Other flips the side. Only meaningful for White and Black.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "NoColor"
}

// PieceType is the kind of a piece irrespective of its color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

var pieceTypeNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (pt PieceType) String() string {
	if int(pt) < len(pieceTypeNames) {
		return pieceTypeNames[pt]
	}
	return "None"
}

// Piece is a colored piece. The twelve concrete pieces are densely
// packed into 0..11, white pieces first, so Piece doubles as an index
// into per-piece tables. NoPiece marks the absence of a piece.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// pieceChars lists FEN letters in Piece order.
const pieceChars = "PNBRQKpnbrqk"

// NewPiece combines a kind and a color into a Piece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(c)*6 + Piece(pt)
}

// Type reports the kind of the piece, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p) % 6
}

// Color reports the side the piece belongs to, NoColor for NoPiece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String renders the FEN letter, uppercase for white pieces.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return pieceChars[p : p+1]
}

// PieceFromChar maps a FEN piece letter to its Piece, or NoPiece when
// ch is not one of the twelve letters.
func PieceFromChar(ch byte) Piece {
	if i := strings.IndexByte(pieceChars, ch); i >= 0 {
		return Piece(i)
	}
	return NoPiece
}
