package board

import "testing"

func TestNewBoardStartingPosition(t *testing.T) {
	b := NewBoard()

	if b.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", b.Len())
	}
	if got := b.Placement(); got != StartPlacement {
		t.Fatalf("Placement() = %q, want %q", got, StartPlacement)
	}

	checks := []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook}, {B1, WhiteKnight}, {C1, WhiteBishop}, {D1, WhiteQueen},
		{E1, WhiteKing}, {F1, WhiteBishop}, {G1, WhiteKnight}, {H1, WhiteRook},
		{A2, WhitePawn}, {H2, WhitePawn},
		{A8, BlackRook}, {D8, BlackQueen}, {E8, BlackKing}, {H8, BlackRook},
		{A7, BlackPawn}, {H7, BlackPawn},
	}
	for _, c := range checks {
		pp, ok := b.PieceAt(c.sq)
		if !ok {
			t.Errorf("no piece on %v", c.sq)
			continue
		}
		if pp.Piece != c.want {
			t.Errorf("piece on %v = %v, want %v", c.sq, pp.Piece, c.want)
		}
	}

	for sq := A3; sq <= H6; sq++ {
		if _, ok := b.PieceAt(sq); ok {
			t.Errorf("unexpected piece on %v", sq)
		}
	}
}

func TestPieceIDsUniqueAndStable(t *testing.T) {
	b := NewBoard()

	seen := make(map[PieceID]bool)
	for _, pp := range b.Pieces() {
		if pp.ID == NoPieceID {
			t.Fatalf("piece %v on %v has no id", pp.Piece, pp.Square)
		}
		if seen[pp.ID] {
			t.Fatalf("duplicate piece id %d", pp.ID)
		}
		seen[pp.ID] = true
	}

	pawn, _ := b.PieceAt(E2)
	if err := b.MoveTo(pawn.ID, E4); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	moved, ok := b.ByID(pawn.ID)
	if !ok {
		t.Fatal("piece vanished after MoveTo")
	}
	if moved.Square != E4 {
		t.Fatalf("square after MoveTo = %v, want %v", moved.Square, E4)
	}
	if moved.Piece != pawn.Piece {
		t.Fatalf("piece changed after MoveTo: %v -> %v", pawn.Piece, moved.Piece)
	}
}

func TestPlaceRejectsOccupiedSquare(t *testing.T) {
	b := NewBoard()
	if _, err := b.Place(WhiteQueen, E2); err == nil {
		t.Fatal("Place on an occupied square did not fail")
	}
	if _, err := b.Place(NoPiece, E4); err == nil {
		t.Fatal("Place of NoPiece did not fail")
	}
	if _, err := b.Place(WhiteQueen, NoSquare); err == nil {
		t.Fatal("Place on an invalid square did not fail")
	}

	id, err := b.Place(WhiteQueen, E4)
	if err != nil {
		t.Fatalf("Place on an empty square: %v", err)
	}
	pp, ok := b.ByID(id)
	if !ok || pp.Square != E4 || pp.Piece != WhiteQueen {
		t.Fatalf("ByID after Place = %+v, %v", pp, ok)
	}
}

func TestMoveToRejectsOccupiedTarget(t *testing.T) {
	b := NewBoard()
	rook, _ := b.PieceAt(A1)

	if err := b.MoveTo(rook.ID, A2); err == nil {
		t.Fatal("MoveTo onto an occupied square did not fail")
	}
	if err := b.MoveTo(rook.ID, NoSquare); err == nil {
		t.Fatal("MoveTo onto an invalid square did not fail")
	}

	// The board never vacates the square on a failed move.
	if pp, _ := b.PieceAt(A1); pp.ID != rook.ID {
		t.Fatalf("rook moved despite error: now %+v", pp)
	}
}

func TestRemove(t *testing.T) {
	b := NewBoard()
	pawn, _ := b.PieceAt(D7)

	if !b.Remove(pawn.ID) {
		t.Fatal("Remove of a live piece returned false")
	}
	if b.Remove(pawn.ID) {
		t.Fatal("Remove of a dead piece returned true")
	}
	if _, ok := b.PieceAt(D7); ok {
		t.Fatal("square still occupied after Remove")
	}
	if _, ok := b.ByID(pawn.ID); ok {
		t.Fatal("ByID still resolves after Remove")
	}
	if b.Len() != 31 {
		t.Fatalf("Len() = %d, want 31", b.Len())
	}

	// A dead id must stay dead even after the square is reused.
	queen, _ := b.PieceAt(D8)
	if err := b.MoveTo(queen.ID, D7); err != nil {
		t.Fatalf("MoveTo onto the vacated square: %v", err)
	}
	if err := b.MoveTo(pawn.ID, D5); err == nil {
		t.Fatal("MoveTo with a dead id did not fail")
	}
}

func TestPiecesSnapshotIsolation(t *testing.T) {
	b := NewBoard()
	snap := b.Pieces()

	pawn, _ := b.PieceAt(E2)
	if err := b.MoveTo(pawn.ID, E4); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}

	for _, pp := range snap {
		if pp.ID == pawn.ID && pp.Square != E2 {
			t.Fatalf("snapshot mutated: pawn now on %v", pp.Square)
		}
	}
}

func TestParsePlacementRoundTrip(t *testing.T) {
	placements := []string{
		StartPlacement,
		"8/8/8/8/8/8/8/8",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		"4k3/8/8/8/8/8/8/4K3",
	}
	for _, placement := range placements {
		b, err := ParsePlacement(placement)
		if err != nil {
			t.Errorf("ParsePlacement(%q): %v", placement, err)
			continue
		}
		if got := b.Placement(); got != placement {
			t.Errorf("round trip of %q = %q", placement, got)
		}
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8",          // seven ranks
		"8/8/8/8/8/8/8/8/8",      // nine ranks
		"9/8/8/8/8/8/8/8",        // digit out of range
		"8/8/8/8/8/8/8/7",        // rank too short
		"8/8/8/8/8/8/8/RR7",      // nine squares in a rank
		"x7/8/8/8/8/8/8/8",       // bad piece letter
		"pppppppp8/8/8/8/8/8/8/", // empty rank
	}
	for _, placement := range bad {
		if _, err := ParsePlacement(placement); err == nil {
			t.Errorf("ParsePlacement(%q) succeeded, want error", placement)
		}
	}
}

func TestSquareAccessors(t *testing.T) {
	tests := []struct {
		sq   Square
		file int
		rank int
		str  string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
		{E4, 4, 3, "e4"},
	}
	for _, tc := range tests {
		if got := tc.sq.File(); got != tc.file {
			t.Errorf("%v.File() = %d, want %d", tc.sq, got, tc.file)
		}
		if got := tc.sq.Rank(); got != tc.rank {
			t.Errorf("%v.Rank() = %d, want %d", tc.sq, got, tc.rank)
		}
		if got := tc.sq.String(); got != tc.str {
			t.Errorf("Square(%d).String() = %q, want %q", uint8(tc.sq), got, tc.str)
		}
	}

	if NewSquare(4, 3) != E4 {
		t.Errorf("NewSquare(4, 3) = %v, want %v", NewSquare(4, 3), E4)
	}
	if NoSquare.IsValid() {
		t.Error("NoSquare.IsValid() = true")
	}
	if !A1.IsValid() || !H8.IsValid() {
		t.Error("corner squares reported invalid")
	}
}

func TestRelativeRank(t *testing.T) {
	tests := []struct {
		sq    Square
		color Color
		want  int
	}{
		{A2, White, 1},
		{A2, Black, 6},
		{A7, Black, 1},
		{A7, White, 6},
		{E4, White, 3},
		{E4, Black, 4},
	}
	for _, tc := range tests {
		if got := tc.sq.RelativeRank(tc.color); got != tc.want {
			t.Errorf("%v.RelativeRank(%v) = %d, want %d", tc.sq, tc.color, got, tc.want)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < NoPieceType; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt {
				t.Errorf("NewPiece(%v, %v).Type() = %v", pt, c, p.Type())
			}
			if p.Color() != c {
				t.Errorf("NewPiece(%v, %v).Color() = %v", pt, c, p.Color())
			}
			if got := PieceFromChar(p.String()[0]); got != p {
				t.Errorf("PieceFromChar(%q) = %v, want %v", p.String(), got, p)
			}
		}
	}

	if White.Other() != Black || Black.Other() != White {
		t.Error("Color.Other() does not flip")
	}
}
