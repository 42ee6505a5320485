package chess

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

const boardSize = 8

// Square is a (row, column) pair. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// IsOnBoard reports whether both coordinates are in [0,8).
func IsOnBoard(sq Square) bool {
	return sq.Row >= 0 && sq.Row < boardSize && sq.Col >= 0 && sq.Col < boardSize
}

func (sq Square) OnBoard() bool { return IsOnBoard(sq) }

// Offset returns the square shifted by (dr, dc); the result may be off-board.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

func (sq Square) index() int { return sq.Row*boardSize + sq.Col }

func squareAt(i int) Square { return Square{Row: i / boardSize, Col: i % boardSize} }

// String returns algebraic coordinates (e.g. "e4"), or "-" when off-board.
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return sq.native().String()
}

func (sq Square) native() nchess.Square {
	return nchess.NewSquare(nchess.File(sq.Col), nchess.Rank(boardSize-1-sq.Row))
}

// ParseSquare reads algebraic coordinates such as "e2".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	return Square{Row: boardSize - 1 - int(rank-'1'), Col: int(file - 'a')}, nil
}

// MustSquare is ParseSquare for fixtures; it panics on bad input.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
