package board

// Move is a from/to square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate notation (e.g., "a2a4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
