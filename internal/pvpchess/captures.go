package pvpchess

import (
	"github.com/park285/Cheese-Chess-Core/internal/chess"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

var pieceValue = map[chess.Kind]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// Captures holds, per side, the pieces that side has taken. Kings never
// enter the lists; a king capture is recorded as the outcome instead.
type Captures struct {
	white []chess.Piece
	black []chess.Piece
}

// Record appends p to the list of the capturing side. It reports whether
// anything was recorded.
func (c *Captures) Record(by chess.Color, p chess.Piece) bool {
	if p.IsZero() || p.Kind == chess.King {
		return false
	}
	switch by {
	case chess.White:
		c.white = append(c.white, p)
	case chess.Black:
		c.black = append(c.black, p)
	default:
		return false
	}
	return true
}

// By returns a copy of the pieces taken by color.
func (c *Captures) By(color chess.Color) []chess.Piece {
	if color == chess.White {
		return append([]chess.Piece(nil), c.white...)
	}
	return append([]chess.Piece(nil), c.black...)
}

func (c *Captures) Reset() {
	c.white = nil
	c.black = nil
}

func (c *Captures) DTO() chessdto.CapturedPieces {
	return chessdto.CapturedPieces{White: glyphs(c.white), Black: glyphs(c.black)}
}

func (c *Captures) Material() chessdto.MaterialScore {
	return chessdto.MaterialScore{White: material(c.white), Black: material(c.black)}
}

func glyphs(ps []chess.Piece) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Symbol())
	}
	return out
}

func material(ps []chess.Piece) int {
	n := 0
	for _, p := range ps {
		n += pieceValue[p.Kind]
	}
	return n
}
