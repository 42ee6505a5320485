package chessdto

// MaterialScore sums standard piece values captured by each side.
type MaterialScore struct {
	White int
	Black int
}

// CapturedPieces lists the glyphs of pieces taken by each side, in order.
type CapturedPieces struct {
	White []string
	Black []string
}

type SessionState struct {
	GameID    string
	FEN       string
	Turn      string
	Phase     string
	Status    string
	Winner    string
	Selected  string
	MovesUCI  []string
	LastMove  string
	MoveCount int
	Material  MaterialScore
	Captured  CapturedPieces
}

// Finished reports whether a king has been captured.
func (s *SessionState) Finished() bool {
	return s != nil && s.Winner != ""
}
