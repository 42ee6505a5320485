package chesspresenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/park285/Cheese-Chess-Core/internal/chess"
	"github.com/park285/Cheese-Chess-Core/internal/msgcat"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

func newTestFormatter(t *testing.T, opts Options) *Formatter {
	t.Helper()
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	return NewFormatter(cat, opts)
}

func TestBoardLetters(t *testing.T) {
	f := newTestFormatter(t, Options{})
	out := f.Board(&chessdto.SessionState{FEN: chess.StartingPlacement})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("want 8 rows, got %d:\n%s", len(lines), out)
	}
	if lines[0] != " r  n  b  q  k  b  n  r " {
		t.Fatalf("rank 8: %q", lines[0])
	}
	if lines[7] != " R  N  B  Q  K  B  N  R " {
		t.Fatalf("rank 1: %q", lines[7])
	}
	if !strings.Contains(lines[4], emptySquare) {
		t.Fatalf("empty rank: %q", lines[4])
	}
}

func TestBoardGlyphsCoordinatesAndLastMove(t *testing.T) {
	f := newTestFormatter(t, Options{Glyphs: true, Coordinates: true})
	state := &chessdto.SessionState{
		FEN:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		LastMove: "e2e4",
	}
	out := f.Board(state)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("want 8 rows plus legend:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "8 ") || !strings.HasPrefix(lines[7], "1 ") {
		t.Fatalf("rank labels missing:\n%s", out)
	}
	if lines[8] != "   a  b  c  d  e  f  g  h" {
		t.Fatalf("legend: %q", lines[8])
	}
	pawn := chess.NewPiece(chess.Pawn, chess.White).Symbol()
	if !strings.Contains(lines[4], "["+pawn+"]") || !strings.Contains(lines[6], "["+emptySquare+"]") {
		t.Fatalf("last move not marked:\n%s", out)
	}
}

func TestBoardBadFEN(t *testing.T) {
	f := newTestFormatter(t, Options{})
	if got := f.Board(&chessdto.SessionState{FEN: "junk"}); got != "junk" {
		t.Fatalf("got %q", got)
	}
	if f.Board(nil) != "" {
		t.Fatalf("nil state")
	}
}

func TestMoveMessages(t *testing.T) {
	f := newTestFormatter(t, Options{Glyphs: true})
	tests := []struct {
		name    string
		summary *chessdto.MoveSummary
		want    string
	}{
		{
			"quiet",
			&chessdto.MoveSummary{Accepted: true, Move: "e2e4", Piece: "P", State: &chessdto.SessionState{Turn: "black"}},
			"White P e2e4",
		},
		{
			"capture",
			&chessdto.MoveSummary{Accepted: true, Move: "e5d4", Piece: "p", Captured: "P", State: &chessdto.SessionState{Turn: "white"}},
			"Black p e5d4 takes P",
		},
		{
			"win",
			&chessdto.MoveSummary{Accepted: true, Finished: true, Winner: "black", Move: "d8h4", State: &chessdto.SessionState{Turn: "black"}},
			"Black captured the king and wins!",
		},
		{
			"not your turn",
			&chessdto.MoveSummary{Reason: "not_your_turn", Move: "e7e5", State: &chessdto.SessionState{Turn: "white"}},
			"It is White's turn.",
		},
		{
			"not candidate",
			&chessdto.MoveSummary{Reason: "not_candidate", Move: "e2e5", State: &chessdto.SessionState{Turn: "white"}},
			"The piece on e2 cannot reach e5.",
		},
	}
	for _, tt := range tests {
		if got := f.Move(tt.summary); got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.name, got, tt.want)
		}
	}
}

func TestStatusAndCaptures(t *testing.T) {
	f := newTestFormatter(t, Options{})
	state := &chessdto.SessionState{
		Turn:     "white",
		MovesUCI: []string{"e2e4", "d7d5", "e4d5"},
		Captured: chessdto.CapturedPieces{White: []string{"♟"}},
		Material: chessdto.MaterialScore{White: 1},
	}
	got := f.Status(state)
	if !strings.Contains(got, "White to move.") {
		t.Fatalf("turn line: %q", got)
	}
	if !strings.Contains(got, "Taken by white: ♟ (+1)") || !strings.Contains(got, "Taken by black: -") {
		t.Fatalf("captures line: %q", got)
	}
	if !strings.Contains(got, "Moves: 1.e2e4 d7d5 2.e4d5") {
		t.Fatalf("history line: %q", got)
	}
}

func TestFormatRecentMovesTruncates(t *testing.T) {
	moves := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	got := formatRecentMoves(moves)
	if !strings.HasPrefix(got, "… 2.c") || !strings.HasSuffix(got, "5.i j") {
		t.Fatalf("got %q", got)
	}
}

func TestErrorMapping(t *testing.T) {
	f := newTestFormatter(t, Options{})
	err := chessdto.DomainError{Code: chessdto.CodeInvalidSquare, Message: `invalid square "z9"`}
	if got := f.Error(err); got != `invalid square "z9". Squares run from a1 to h8.` {
		t.Fatalf("got %q", got)
	}
	if got := f.Error(chessdto.DomainError{Code: "other", Message: "boom"}); got != "boom" {
		t.Fatalf("got %q", got)
	}
	if got := f.UnknownCommand("dance"); got != `Unknown command "dance". Type 'help'.` {
		t.Fatalf("got %q", got)
	}
}

func TestPresenterBoard(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriterPresenter(&buf, newTestFormatter(t, Options{}))
	state := &chessdto.SessionState{FEN: chess.StartingPlacement, Turn: "white"}
	if err := p.Board("hello", state); err != nil {
		t.Fatalf("Board: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "hello\n") || !strings.Contains(out, "White to move.") {
		t.Fatalf("output:\n%s", out)
	}
	buf.Reset()
	if err := p.Board("  ", nil); err != nil || buf.Len() != 0 {
		t.Fatalf("blank message produced output %q (err=%v)", buf.String(), err)
	}
}
