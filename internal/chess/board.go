package chess

// Board is an 8x8 grid stored row-major in a flat array. It is a value:
// every transition returns a new Board and never touches the receiver.
type Board struct {
	cells [boardSize * boardSize]Piece
}

// Placement pairs an occupied square with its piece.
type Placement struct {
	Square Square
	Piece  Piece
}

var backRank = [boardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func EmptyBoard() Board { return Board{} }

// InitialBoard returns the standard starting position, White at the bottom.
func InitialBoard() Board {
	var b Board
	for col, kind := range backRank {
		b.cells[Sq(0, col).index()] = NewPiece(kind, Black)
		b.cells[Sq(1, col).index()] = NewPiece(Pawn, Black)
		b.cells[Sq(6, col).index()] = NewPiece(Pawn, White)
		b.cells[Sq(7, col).index()] = NewPiece(kind, White)
	}
	return b
}

// PieceAt returns the occupant of sq. Off-board squares are empty.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	p := b.cells[sq.index()]
	return p, !p.IsZero()
}

func (b Board) IsEmpty(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return sq.OnBoard() && !ok
}

// Put returns a board with p placed on sq. Off-board squares are ignored.
func (b Board) Put(sq Square, p Piece) Board {
	if sq.OnBoard() {
		b.cells[sq.index()] = p
	}
	return b
}

// Remove returns a board with sq cleared.
func (b Board) Remove(sq Square) Board {
	return b.Put(sq, Piece{})
}

// WithPieceMoved is the default mover: it clears from, places the moving
// piece on to with HasMoved set and drops whatever stood on to.
func (b Board) WithPieceMoved(from, to Square) Board {
	p, ok := b.PieceAt(from)
	if !ok || !to.OnBoard() {
		return b
	}
	b.cells[from.index()] = Piece{}
	b.cells[to.index()] = p.Moved()
	return b
}

// Pieces lists occupied squares in row-major order.
func (b Board) Pieces() []Placement {
	out := make([]Placement, 0, 32)
	for i, p := range b.cells {
		if p.IsZero() {
			continue
		}
		out = append(out, Placement{Square: squareAt(i), Piece: p})
	}
	return out
}
