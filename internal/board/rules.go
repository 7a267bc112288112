package board

// IsMoveLegal reports whether the given piece may move to target under
// standard movement rules, given the full set of live pieces (which
// includes the moving piece itself). It is a pure predicate: no side
// effects, and false for any inapplicable input.
//
// Castling, en passant, promotion, and check are not part of the rules.
func IsMoveLegal(p PlacedPiece, target Square, pieces []PlacedPiece) bool {
	if !target.IsValid() {
		return false
	}

	// A target held by a friendly piece is illegal for every kind. Since
	// the moving piece occupies its own square, this also rejects moving
	// a piece onto itself.
	if occ, ok := pieceOn(pieces, target); ok && occ.Piece.Color() == p.Piece.Color() {
		return false
	}

	dr := abs(target.Rank() - p.Square.Rank())
	df := abs(target.File() - p.Square.File())

	switch p.Piece.Type() {
	case King:
		return max(dr, df) == 1
	case Queen:
		if dr != df && dr != 0 && df != 0 {
			return false
		}
		return pathClear(p.Square, target, pieces)
	case Bishop:
		return dr == df && pathClear(p.Square, target, pieces)
	case Knight:
		return (dr == 2 && df == 1) || (dr == 1 && df == 2)
	case Rook:
		if (dr == 0) == (df == 0) {
			return false
		}
		return pathClear(p.Square, target, pieces)
	case Pawn:
		return pawnMoveLegal(p, target, pieces)
	}
	return false
}

// pawnMoveLegal checks pawn moves. White advances toward higher ranks,
// Black toward lower ones.
func pawnMoveLegal(p PlacedPiece, target Square, pieces []PlacedPiece) bool {
	forward := target.Rank() - p.Square.Rank()
	if p.Piece.Color() == Black {
		forward = -forward
	}
	df := abs(target.File() - p.Square.File())
	_, occupied := pieceOn(pieces, target)

	switch {
	case forward == 1 && df == 0:
		return !occupied
	case forward == 2 && df == 0:
		// Double step only from the pawn's starting rank, with both the
		// intervening square and the target empty.
		return p.Square.RelativeRank(p.Piece.Color()) == 1 &&
			pathClear(p.Square, target, pieces) &&
			!occupied
	case forward == 1 && df == 1:
		// Diagonal only captures. The shared friendly-occupant rule has
		// already excluded own pieces, so any occupant is an opponent.
		return occupied
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must be aligned on a rank, file, or diagonal; the
// interval is open, so adjacent squares are trivially clear.
func pathClear(from, to Square, pieces []PlacedPiece) bool {
	stepR := sign(to.Rank() - from.Rank())
	stepF := sign(to.File() - from.File())

	rank := from.Rank() + stepR
	file := from.File() + stepF
	for rank != to.Rank() || file != to.File() {
		if _, ok := pieceOn(pieces, NewSquare(file, rank)); ok {
			return false
		}
		rank += stepR
		file += stepF
	}
	return true
}

// LegalTargets returns every square the piece may legally move to.
func LegalTargets(p PlacedPiece, pieces []PlacedPiece) []Square {
	var out []Square
	for sq := A1; sq <= H8; sq++ {
		if IsMoveLegal(p, sq, pieces) {
			out = append(out, sq)
		}
	}
	return out
}

func pieceOn(pieces []PlacedPiece, sq Square) (PlacedPiece, bool) {
	for _, pp := range pieces {
		if pp.Square == sq {
			return pp, true
		}
	}
	return PlacedPiece{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
