package pvpchess

import (
	"github.com/park285/Cheese-Chess-Core/internal/chess"
)

// Phase is the step of the turn state machine the controller is in.
type Phase string

const (
	PhaseAwaitingSelection Phase = "AWAITING_SELECTION"
	PhaseMoveOffered       Phase = "MOVE_OFFERED"
	// PhaseCommitted only exists inside a commit, while the lock is held.
	// Controller.Phase never reports it; it is visible to the chess_move
	// log event.
	PhaseCommitted Phase = "COMMITTED"
)

// Status represents the game lifecycle state.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusFinished Status = "FINISHED"
)

// Reason explains a rejected selection or move. Rejections are ordinary
// results, never errors.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonGameOver     Reason = "game_over"
	ReasonOffBoard     Reason = "off_board"
	ReasonEmptySquare  Reason = "empty_square"
	ReasonNotYourTurn  Reason = "not_your_turn"
	ReasonNoSelection  Reason = "no_selection"
	ReasonOwnPiece     Reason = "own_piece"
	ReasonNotCandidate Reason = "not_candidate"
)

// Outcome is InProgress (zero value) or Won by Winner.
type Outcome struct {
	Winner chess.Color
}

var InProgress = Outcome{}

func Won(c chess.Color) Outcome { return Outcome{Winner: c} }

func (o Outcome) Finished() bool { return o.Winner != "" }

func (o Outcome) String() string {
	if !o.Finished() {
		return "in_progress"
	}
	return string(o.Winner) + "_won"
}

// Selection is the answer to picking up a piece.
type Selection struct {
	Square       chess.Square
	Piece        chess.Piece
	Destinations []chess.Square
	Reason       Reason
}

func (s Selection) Accepted() bool { return s.Reason == ReasonNone }

// MoveResult is either a rejection (Reason set, everything else zero) or
// the committed transition. On a king capture Board is the unchanged input
// board, Entry is zero and Outcome is Won.
type MoveResult struct {
	Reason   Reason
	Board    chess.Board
	Entry    chess.MoveRecord
	Captured chess.Piece
	Outcome  Outcome
}

func (r MoveResult) Accepted() bool { return r.Reason == ReasonNone }

func rejected(r Reason) MoveResult { return MoveResult{Reason: r} }
