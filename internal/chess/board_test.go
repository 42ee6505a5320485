package chess

import "testing"

func countColor(b Board, c Color) int {
	n := 0
	for _, pl := range b.Pieces() {
		if pl.Piece.Color == c {
			n++
		}
	}
	return n
}

func TestSquareNotation(t *testing.T) {
	cases := []struct {
		sq   Square
		want string
	}{
		{Sq(7, 0), "a1"},
		{Sq(0, 7), "h8"},
		{Sq(6, 4), "e2"},
		{Sq(4, 4), "e4"},
		{Sq(8, 0), "-"},
		{Sq(0, -1), "-"},
	}
	for _, c := range cases {
		if got := c.sq.String(); got != c.want {
			t.Fatalf("%+v: got %q want %q", c.sq, got, c.want)
		}
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Sq(row, col)
			back, err := ParseSquare(sq.String())
			if err != nil || back != sq {
				t.Fatalf("round trip %v: got %v err=%v", sq, back, err)
			}
		}
	}
	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e22"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestIsOnBoard(t *testing.T) {
	if !IsOnBoard(Sq(0, 0)) || !IsOnBoard(Sq(7, 7)) {
		t.Fatalf("corners must be on board")
	}
	for _, sq := range []Square{Sq(-1, 0), Sq(0, 8), Sq(8, 8), Sq(3, -2)} {
		if IsOnBoard(sq) {
			t.Fatalf("%+v reported on board", sq)
		}
	}
}

func TestInitialBoardLayout(t *testing.T) {
	b := InitialBoard()
	if got := len(b.Pieces()); got != 32 {
		t.Fatalf("want 32 pieces, got %d", got)
	}
	if p, ok := b.PieceAt(Sq(7, 4)); !ok || p.Kind != King || p.Color != White || p.HasMoved {
		t.Fatalf("white king misplaced: %+v", p)
	}
	if p, ok := b.PieceAt(Sq(0, 3)); !ok || p.Kind != Queen || p.Color != Black {
		t.Fatalf("black queen misplaced: %+v", p)
	}
	for col := 0; col < 8; col++ {
		if p, _ := b.PieceAt(Sq(6, col)); p.Kind != Pawn || p.Color != White {
			t.Fatalf("row 6 col %d: %+v", col, p)
		}
		if !b.IsEmpty(Sq(4, col)) {
			t.Fatalf("row 4 col %d should be empty", col)
		}
	}
	if p, ok := b.PieceAt(Sq(0, 4)); !ok || p.Kind != King || p.Color != Black {
		t.Fatalf("black king misplaced: %+v", p)
	}
}

func TestWithPieceMovedDoesNotMutateInput(t *testing.T) {
	before := InitialBoard()
	after := before.WithPieceMoved(Sq(6, 4), Sq(4, 4))

	if p, ok := before.PieceAt(Sq(6, 4)); !ok || p.HasMoved {
		t.Fatalf("input board changed: %+v", p)
	}
	if !before.IsEmpty(Sq(4, 4)) {
		t.Fatalf("input board gained a piece")
	}
	if !after.IsEmpty(Sq(6, 4)) {
		t.Fatalf("source not cleared")
	}
	if p, ok := after.PieceAt(Sq(4, 4)); !ok || !p.HasMoved || p.Kind != Pawn {
		t.Fatalf("moved piece wrong: %+v", p)
	}
}

func TestWithPieceMovedCaptures(t *testing.T) {
	b := EmptyBoard().
		Put(Sq(4, 4), NewPiece(Rook, White)).
		Put(Sq(1, 4), NewPiece(Knight, Black))
	next := b.WithPieceMoved(Sq(4, 4), Sq(1, 4))
	if p, _ := next.PieceAt(Sq(1, 4)); p.Kind != Rook || p.Color != White {
		t.Fatalf("capture failed: %+v", p)
	}
	if countColor(next, Black) != 0 {
		t.Fatalf("captured piece still on board")
	}
}

func TestWithPieceMovedFromEmptyIsNoop(t *testing.T) {
	b := InitialBoard()
	if b.WithPieceMoved(Sq(4, 4), Sq(3, 4)) != b {
		t.Fatalf("moving from an empty square changed the board")
	}
}

func TestHasMovedIsIrreversible(t *testing.T) {
	b := EmptyBoard().Put(Sq(7, 1), NewPiece(Knight, White))
	there := ApplyMove(b, Sq(7, 1), Sq(5, 2), MoveRecord{})
	back := ApplyMove(there, Sq(5, 2), Sq(7, 1), MoveRecord{})
	p, ok := back.PieceAt(Sq(7, 1))
	if !ok || !p.HasMoved {
		t.Fatalf("HasMoved reverted after returning home: %+v", p)
	}
	if back == b {
		t.Fatalf("board equal to the original after a round trip")
	}
}

func TestPieceGlyphs(t *testing.T) {
	if got := NewPiece(Knight, White).Letter(); got != "N" {
		t.Fatalf("letter: %q", got)
	}
	if got := NewPiece(Queen, Black).Letter(); got != "q" {
		t.Fatalf("letter: %q", got)
	}
	if NewPiece(King, White).Symbol() == "" || (Piece{}).Symbol() != "" {
		t.Fatalf("symbol mapping broken")
	}
}
