package chessdto

// Error codes surfaced to presentation collaborators.
const (
	CodeInvalidSquare = "invalid_square"
	CodeInvalidMove   = "invalid_move_format"
)

type DomainError struct {
	Code    string
	Message string
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "chess service error"
}
