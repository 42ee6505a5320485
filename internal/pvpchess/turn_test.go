package pvpchess

import (
	"testing"

	"github.com/park285/Cheese-Chess-Core/internal/chess"
)

func sq(s string) chess.Square { return chess.MustSquare(s) }

func countColor(b chess.Board, c chess.Color) int {
	n := 0
	for _, pl := range b.Pieces() {
		if pl.Piece.Color == c {
			n++
		}
	}
	return n
}

func TestAttemptMoveRejections(t *testing.T) {
	b := chess.InitialBoard()
	tests := []struct {
		name     string
		from, to chess.Square
		side     chess.Color
		want     Reason
	}{
		{"off board from", chess.Sq(8, 0), sq("e4"), chess.White, ReasonOffBoard},
		{"off board to", sq("e2"), chess.Sq(-1, 4), chess.White, ReasonOffBoard},
		{"empty", sq("e4"), sq("e5"), chess.White, ReasonEmptySquare},
		{"wrong side", sq("e7"), sq("e5"), chess.White, ReasonNotYourTurn},
		{"own piece", sq("a1"), sq("a2"), chess.White, ReasonOwnPiece},
		{"not candidate", sq("e2"), sq("e5"), chess.White, ReasonNotCandidate},
		{"same square", sq("g1"), sq("g1"), chess.White, ReasonOwnPiece},
	}
	for _, tt := range tests {
		res := AttemptMove(b, tt.from, tt.to, chess.MoveRecord{}, tt.side)
		if res.Accepted() || res.Reason != tt.want {
			t.Fatalf("%s: got reason %q want %q", tt.name, res.Reason, tt.want)
		}
		if res.Board != (chess.Board{}) || !res.Entry.IsZero() {
			t.Fatalf("%s: rejection carried data", tt.name)
		}
	}
}

func TestAttemptMoveCommit(t *testing.T) {
	b := chess.InitialBoard()
	res := AttemptMove(b, sq("e2"), sq("e4"), chess.MoveRecord{}, chess.White)
	if !res.Accepted() {
		t.Fatalf("e2e4 rejected: %s", res.Reason)
	}
	if res.Entry.String() != "e2e4" || res.Entry.Piece.Kind != chess.Pawn {
		t.Fatalf("entry: %+v", res.Entry)
	}
	if !res.Captured.IsZero() || res.Outcome.Finished() {
		t.Fatalf("unexpected capture/outcome: %+v", res)
	}
	if !res.Board.IsEmpty(sq("e2")) || res.Board.IsEmpty(sq("e4")) {
		t.Fatalf("board not updated: %s", res.Board.FEN())
	}
	if b != chess.InitialBoard() {
		t.Fatalf("input board mutated")
	}
}

func TestAttemptMoveKingCapture(t *testing.T) {
	b := chess.MustParseBoard("4k3/8/8/8/8/8/8/4RK2")
	res := AttemptMove(b, sq("e1"), sq("e8"), chess.MoveRecord{}, chess.White)
	if !res.Accepted() {
		t.Fatalf("king capture rejected: %s", res.Reason)
	}
	if res.Outcome != Won(chess.White) {
		t.Fatalf("outcome: %v", res.Outcome)
	}
	if res.Board != b {
		t.Fatalf("mover was applied on a king capture: %s", res.Board.FEN())
	}
	if !res.Entry.IsZero() {
		t.Fatalf("king capture produced a ledger entry: %+v", res.Entry)
	}
	if res.Captured.Kind != chess.King || res.Captured.Color != chess.Black {
		t.Fatalf("captured: %+v", res.Captured)
	}
}

func TestAttemptMoveEnPassantCapture(t *testing.T) {
	b := chess.EmptyBoard().
		Put(chess.Sq(3, 5), chess.NewPiece(chess.Pawn, chess.White).Moved()).
		Put(chess.Sq(3, 4), chess.NewPiece(chess.Pawn, chess.Black).Moved())
	last := chess.MoveRecord{Piece: chess.NewPiece(chess.Pawn, chess.Black), From: chess.Sq(1, 4), To: chess.Sq(3, 4)}
	res := AttemptMove(b, chess.Sq(3, 5), chess.Sq(2, 4), last, chess.White)
	if !res.Accepted() {
		t.Fatalf("en passant rejected: %s", res.Reason)
	}
	if res.Captured.Kind != chess.Pawn || res.Captured.Color != chess.Black {
		t.Fatalf("en passant victim not reported: %+v", res.Captured)
	}
	if countColor(res.Board, chess.Black) != 0 {
		t.Fatalf("victim still on board: %s", res.Board.FEN())
	}
}

func TestOutcomeString(t *testing.T) {
	if InProgress.String() != "in_progress" || InProgress.Finished() {
		t.Fatalf("in progress: %q", InProgress.String())
	}
	if got := Won(chess.Black).String(); got != "black_won" {
		t.Fatalf("won: %q", got)
	}
}
