// Package game drives an interactive chess session: square selection,
// turn order, and win detection by king capture.
package game

import "clickchess/internal/board"

// Phase names the selection state of a session.
type Phase uint8

const (
	// Idle means nothing is selected.
	Idle Phase = iota
	// SquareSelected means the selected square holds no piece of the side
	// to move.
	SquareSelected
	// PieceSelected means a piece of the side to move is held and the next
	// chosen square is a move attempt.
	PieceSelected
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case SquareSelected:
		return "square selected"
	case PieceSelected:
		return "piece selected"
	}
	return "unknown"
}

// EventKind discriminates player inputs.
type EventKind uint8

const (
	// SquareChosen reports that the player picked a square.
	SquareChosen EventKind = iota
	// SquareCleared reports that the player dismissed the given selection.
	SquareCleared
)

// Event is a single player input delivered to Tick.
type Event struct {
	Kind   EventKind
	Square board.Square
}

// ChooseSquare builds a SquareChosen event.
func ChooseSquare(sq board.Square) Event {
	return Event{Kind: SquareChosen, Square: sq}
}

// ClearSquare builds a SquareCleared event.
func ClearSquare(sq board.Square) Event {
	return Event{Kind: SquareCleared, Square: sq}
}

// Result reports what a tick did. Move and Rejected hold the most recent
// outcome of each kind within the tick; Captured lists every piece removed
// from play during it.
type Result struct {
	Move     *board.Move
	Rejected *board.Move
	Captured []board.PlacedPiece
	GameOver bool
}

// Session is one game from the standard starting position to a king
// capture. It is not safe for concurrent use; drive it from a single
// goroutine.
type Session struct {
	board    *board.Board
	turn     board.Color
	phase    Phase
	selected board.Square
	held     board.PieceID
	pending  []board.PlacedPiece
	over     bool
}

// NewSession starts a game with white to move.
func NewSession() *Session {
	return &Session{
		board:    board.NewBoard(),
		turn:     board.White,
		selected: board.NoSquare,
	}
}

// Tick applies the frame's events in order and reports what happened.
// Once a king has been captured the session is terminal and Tick ignores
// all further input.
func (s *Session) Tick(events []Event) Result {
	var res Result
	if s.over {
		return res
	}

	for _, ev := range events {
		switch ev.Kind {
		case SquareChosen:
			s.choose(ev.Square, &res)
		case SquareCleared:
			s.clear(ev.Square)
		}
	}

	if len(s.pending) > 0 {
		res.Captured = s.pending
		s.pending = nil
		for _, pp := range res.Captured {
			if pp.Piece.Type() == board.King {
				s.over = true
				res.GameOver = true
			}
		}
	}

	return res
}

func (s *Session) choose(sq board.Square, res *Result) {
	if !sq.IsValid() {
		return
	}

	if s.phase == PieceSelected {
		s.attemptMove(sq, res)
		return
	}

	s.selected = sq
	if pp, ok := s.board.PieceAt(sq); ok && pp.Piece.Color() == s.turn {
		s.held = pp.ID
		s.phase = PieceSelected
	} else {
		s.phase = SquareSelected
	}
}

// clear drops the selection if sq still names it. Stale or repeated clears
// are no-ops.
func (s *Session) clear(sq board.Square) {
	if s.phase == Idle || sq != s.selected {
		return
	}
	s.deselect()
}

func (s *Session) deselect() {
	s.phase = Idle
	s.selected = board.NoSquare
	s.held = board.NoPieceID
}

// attemptMove plays the held piece to sq. Whatever the outcome, the
// selection is dropped: an illegal attempt deselects without touching the
// board or the turn.
func (s *Session) attemptMove(sq board.Square, res *Result) {
	pp, ok := s.board.ByID(s.held)
	if !ok {
		s.deselect()
		return
	}
	mv := board.Move{From: pp.Square, To: sq}

	if !board.IsMoveLegal(pp, sq, s.board.Pieces()) {
		res.Rejected = &mv
		s.deselect()
		return
	}

	if victim, occupied := s.board.PieceAt(sq); occupied {
		s.board.Remove(victim.ID)
		s.pending = append(s.pending, victim)
	}
	if err := s.board.MoveTo(pp.ID, sq); err != nil {
		// The legality check vetted the target and any occupant was just
		// removed, so the board cannot refuse.
		panic(err)
	}
	s.turn = s.turn.Other()
	res.Move = &mv
	s.deselect()
}

// Pieces returns a snapshot of the pieces still in play.
func (s *Session) Pieces() []board.PlacedPiece { return s.board.Pieces() }

// Turn returns the side to move.
func (s *Session) Turn() board.Color { return s.turn }

// Over reports whether a king has been captured.
func (s *Session) Over() bool { return s.over }

// Phase returns the selection state.
func (s *Session) Phase() Phase { return s.phase }

// SelectedSquare returns the selected square, or NoSquare when idle.
func (s *Session) SelectedSquare() board.Square { return s.selected }

// SelectedPiece returns the piece held for the next move attempt.
func (s *Session) SelectedPiece() (board.PlacedPiece, bool) {
	if s.phase != PieceSelected {
		return board.PlacedPiece{}, false
	}
	return s.board.ByID(s.held)
}

// LegalTargets returns the squares the held piece may move to.
func (s *Session) LegalTargets() []board.Square {
	pp, ok := s.SelectedPiece()
	if !ok {
		return nil
	}
	return board.LegalTargets(pp, s.board.Pieces())
}
