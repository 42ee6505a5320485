package chess

import (
	nchess "github.com/corentings/chess/v2"
)

// Color identifies chess side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opposite returns the other side. Unknown colors map to White.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward is the row delta a pawn of this color advances by.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow is the back rank of the color.
func (c Color) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRow is the farthest rank for the color's pawns.
func (c Color) PromotionRow() int {
	return c.Opposite().HomeRow()
}

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return ""
	}
}

// Piece is a value; a moved piece is a new value with HasMoved set.
// The zero Piece stands for an empty square.
type Piece struct {
	Kind     Kind
	Color    Color
	HasMoved bool
}

func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Moved returns a copy with HasMoved set.
func (p Piece) Moved() Piece {
	p.HasMoved = true
	return p
}

func (p Piece) String() string {
	if p.IsZero() {
		return ""
	}
	return string(p.Color) + " " + p.Kind.String()
}

// Letter returns the FEN letter (uppercase for White).
func (p Piece) Letter() string {
	var l byte
	switch p.Kind {
	case Pawn:
		l = 'P'
	case Knight:
		l = 'N'
	case Bishop:
		l = 'B'
	case Rook:
		l = 'R'
	case Queen:
		l = 'Q'
	case King:
		l = 'K'
	default:
		return ""
	}
	if p.Color == Black {
		l |= 0x20 // lowercase
	}
	return string(l)
}

// Symbol returns the unicode glyph used as the piece's visual identity.
func (p Piece) Symbol() string {
	np := p.native()
	if np == nchess.NoPiece {
		return ""
	}
	return np.String()
}

func (p Piece) native() nchess.Piece {
	if p.IsZero() {
		return nchess.NoPiece
	}
	c := nchess.White
	if p.Color == Black {
		c = nchess.Black
	}
	var t nchess.PieceType
	switch p.Kind {
	case Pawn:
		t = nchess.Pawn
	case Knight:
		t = nchess.Knight
	case Bishop:
		t = nchess.Bishop
	case Rook:
		t = nchess.Rook
	case Queen:
		t = nchess.Queen
	case King:
		t = nchess.King
	}
	return nchess.NewPiece(t, c)
}
