package chess

type direction struct{ dr, dc int }

var (
	knightOffsets = []direction{
		{-2, -1}, {-2, 1},
		{-1, -2}, {-1, 2},
		{1, -2}, {1, 2},
		{2, -1}, {2, 1},
	}
	orthogonal = []direction{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonal   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allAround  = []direction{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	queenRays = append(append([]direction{}, orthogonal...), diagonal...)
)

// canLand reports whether a piece of color c may end on sq: on-board and
// either empty or holding an enemy.
func canLand(b Board, sq Square, c Color) bool {
	if !sq.OnBoard() {
		return false
	}
	p, ok := b.PieceAt(sq)
	return !ok || p.Color != c
}

func steps(b Board, from Square, c Color, dirs []direction) []Square {
	out := make([]Square, 0, len(dirs))
	for _, d := range dirs {
		to := from.Offset(d.dr, d.dc)
		if canLand(b, to, c) {
			out = append(out, to)
		}
	}
	return out
}

// slide walks each ray until the edge or the first occupied square, which
// is included only when it holds an enemy piece.
func slide(b Board, from Square, c Color, dirs []direction) []Square {
	out := make([]Square, 0, 14)
	for _, d := range dirs {
		for to := from.Offset(d.dr, d.dc); to.OnBoard(); to = to.Offset(d.dr, d.dc) {
			p, occupied := b.PieceAt(to)
			if !occupied {
				out = append(out, to)
				continue
			}
			if p.Color != c {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

func knightMoves(b Board, from Square, p Piece, _ MoveRecord) []Square {
	return steps(b, from, p.Color, knightOffsets)
}

func bishopMoves(b Board, from Square, p Piece, _ MoveRecord) []Square {
	return slide(b, from, p.Color, diagonal)
}

func rookMoves(b Board, from Square, p Piece, _ MoveRecord) []Square {
	return slide(b, from, p.Color, orthogonal)
}

func queenMoves(b Board, from Square, p Piece, _ MoveRecord) []Square {
	return slide(b, from, p.Color, queenRays)
}

func kingMoves(b Board, from Square, p Piece, _ MoveRecord) []Square {
	out := steps(b, from, p.Color, allAround)
	if p.HasMoved || from.Row != p.Color.HomeRow() {
		return out
	}
	if to, ok := castleTarget(b, from, p.Color, boardSize-1); ok {
		out = append(out, to)
	}
	if to, ok := castleTarget(b, from, p.Color, 0); ok {
		out = append(out, to)
	}
	return out
}

// castleTarget checks castling toward the rook on rookCol. Attacked
// squares are not considered.
func castleTarget(b Board, king Square, c Color, rookCol int) (Square, bool) {
	rook, ok := b.PieceAt(Sq(king.Row, rookCol))
	if !ok || rook.Kind != Rook || rook.Color != c || rook.HasMoved {
		return Square{}, false
	}
	step := 1
	if rookCol < king.Col {
		step = -1
	}
	for col := king.Col + step; col != rookCol; col += step {
		if !b.IsEmpty(Sq(king.Row, col)) {
			return Square{}, false
		}
	}
	to := king.Offset(0, 2*step)
	if !b.IsEmpty(to) {
		return Square{}, false
	}
	return to, true
}

func pawnMoves(b Board, from Square, p Piece, last MoveRecord) []Square {
	out := make([]Square, 0, 4)
	dir := p.Color.Forward()

	one := from.Offset(dir, 0)
	if b.IsEmpty(one) {
		out = append(out, one)
		two := from.Offset(2*dir, 0)
		if !p.HasMoved && b.IsEmpty(two) {
			out = append(out, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if target, ok := b.PieceAt(to); ok && target.Color != p.Color {
			out = append(out, to)
		}
	}

	if to, ok := enPassantTarget(from, p, last); ok && b.IsEmpty(to) {
		out = append(out, to)
	}
	return out
}

// enPassantTarget returns the capture square when the last move was an
// enemy pawn's double push that ended beside the pawn on from.
func enPassantTarget(from Square, p Piece, last MoveRecord) (Square, bool) {
	if p.Kind != Pawn || !last.IsDoublePawnPush() || last.Piece.Color == p.Color {
		return Square{}, false
	}
	if last.To.Row != from.Row {
		return Square{}, false
	}
	if dc := last.To.Col - from.Col; dc != 1 && dc != -1 {
		return Square{}, false
	}
	to := Sq(from.Row+p.Color.Forward(), last.To.Col)
	return to, to.OnBoard()
}
