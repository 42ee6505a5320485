package chessdto

// MoveSummary describes the result of one attempted move.
type MoveSummary struct {
	State    *SessionState
	Move     string
	Piece    string
	Accepted bool
	Reason   string
	Captured string
	Finished bool
	Winner   string
}
