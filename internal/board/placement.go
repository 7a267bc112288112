package board

import (
	"fmt"
	"strings"
)

// StartPlacement describes the standard starting layout.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from a piece placement string, the
// first field of a FEN record: ranks 8 down to 1 separated by '/',
// piece letters per FEN, digits for runs of empty squares.
func ParsePlacement(placement string) (*Board, error) {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("placement needs 8 ranks, got %d", len(rows))
	}

	b := &Board{nextID: 1}
	for i, row := range rows {
		if err := b.placeRank(7-i, row); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// placeRank fills one rank of the board from its placement field.
func (b *Board) placeRank(rank int, row string) error {
	file := 0
	for j := 0; j < len(row); j++ {
		ch := row[j]
		if ch >= '1' && ch <= '8' {
			file += int(ch - '0')
			continue
		}
		p := PieceFromChar(ch)
		if p == NoPiece {
			return fmt.Errorf("bad piece letter %q in rank %d", ch, rank+1)
		}
		if file > 7 {
			return fmt.Errorf("rank %d overflows the board", rank+1)
		}
		if _, err := b.Place(p, NewSquare(file, rank)); err != nil {
			return err
		}
		file++
	}
	if file != 8 {
		return fmt.Errorf("rank %d covers %d squares, want 8", rank+1, file)
	}
	return nil
}

// Placement renders the board back into a piece placement string.
func (b *Board) Placement() string {
	out := make([]byte, 0, 72)
	for rank := 7; rank >= 0; rank-- {
		run := byte(0)
		for file := 0; file < 8; file++ {
			pp, ok := b.PieceAt(NewSquare(file, rank))
			if !ok {
				run++
				continue
			}
			if run > 0 {
				out = append(out, '0'+run)
				run = 0
			}
			out = append(out, pieceChars[pp.Piece])
		}
		if run > 0 {
			out = append(out, '0'+run)
		}
		if rank > 0 {
			out = append(out, '/')
		}
	}
	return string(out)
}
