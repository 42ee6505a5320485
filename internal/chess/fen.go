package chess

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// StartingPlacement is the FEN board field of the initial position.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FEN returns the board-placement field of a FEN string.
func (b Board) FEN() string {
	m := make(map[nchess.Square]nchess.Piece, 32)
	for _, pl := range b.Pieces() {
		m[pl.Square.native()] = pl.Piece.native()
	}
	return nchess.NewBoard(m).String()
}

// ParseBoard reads a FEN board-placement field. Any trailing FEN fields are
// ignored. Pieces standing on their square of the initial position are
// unmoved; every other piece is marked as moved.
func ParseBoard(placement string) (Board, error) {
	fields := strings.Fields(placement)
	if len(fields) == 0 {
		return Board{}, fmt.Errorf("empty placement")
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != boardSize {
		return Board{}, fmt.Errorf("placement %q: want %d ranks, got %d", fields[0], boardSize, len(ranks))
	}
	var b Board
	for row, rank := range ranks {
		col := 0
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				col += int(r - '0')
				continue
			}
			p, ok := pieceFromLetter(r)
			if !ok {
				return Board{}, fmt.Errorf("placement %q: bad piece %q", fields[0], r)
			}
			if col >= boardSize {
				return Board{}, fmt.Errorf("placement %q: rank %d overflows", fields[0], row)
			}
			sq := Sq(row, col)
			p.HasMoved = !onStartSquare(p, sq)
			b.cells[sq.index()] = p
			col++
		}
		if col != boardSize {
			return Board{}, fmt.Errorf("placement %q: rank %d has %d files", fields[0], row, col)
		}
	}
	return b, nil
}

// MustParseBoard panics on malformed placements. Intended for fixtures.
func MustParseBoard(placement string) Board {
	b, err := ParseBoard(placement)
	if err != nil {
		panic(err)
	}
	return b
}

func pieceFromLetter(r rune) (Piece, bool) {
	color := White
	if r >= 'a' && r <= 'z' {
		color = Black
		r -= 0x20
	}
	var k Kind
	switch r {
	case 'P':
		k = Pawn
	case 'N':
		k = Knight
	case 'B':
		k = Bishop
	case 'R':
		k = Rook
	case 'Q':
		k = Queen
	case 'K':
		k = King
	default:
		return Piece{}, false
	}
	return NewPiece(k, color), true
}

func onStartSquare(p Piece, sq Square) bool {
	home, ok := InitialBoard().PieceAt(sq)
	return ok && home.Kind == p.Kind && home.Color == p.Color
}
