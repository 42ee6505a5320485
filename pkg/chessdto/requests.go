package chessdto

import "strings"

// MoveRequest carries the two picks of the player in algebraic form.
type MoveRequest struct {
	From string
	To   string
}

// ParseMoveRequest accepts "e2e4", "e2 e4" and "e2-e4".
func ParseMoveRequest(text string) (MoveRequest, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(s)
	if len(s) != 4 {
		return MoveRequest{}, DomainError{Code: CodeInvalidMove, Message: "move must look like e2e4"}
	}
	return MoveRequest{From: s[:2], To: s[2:]}, nil
}

func (r MoveRequest) String() string { return r.From + r.To }

// LegalMovesRequest asks for the destinations of the piece on Square.
type LegalMovesRequest struct {
	Square string
}
