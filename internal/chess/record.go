package chess

// MoveRecord describes the most recent committed move. The zero value
// means no move has been played yet.
type MoveRecord struct {
	Piece Piece
	From  Square
	To    Square
}

func (m MoveRecord) IsZero() bool { return m.Piece.IsZero() }

// String returns the raw coordinate form, e.g. "e2e4".
func (m MoveRecord) String() string {
	if m.IsZero() {
		return ""
	}
	return m.From.String() + m.To.String()
}

// IsDoublePawnPush reports a two-row pawn advance, the only move that
// opens an en passant capture.
func (m MoveRecord) IsDoublePawnPush() bool {
	if m.Piece.Kind != Pawn {
		return false
	}
	d := m.From.Row - m.To.Row
	return d == 2 || d == -2
}
