package chess

func defaultMove(b Board, from, to Square, _ Piece, _ MoveRecord) Board {
	return b.WithPieceMoved(from, to)
}

// kingMove also brings the rook across when the king travels two columns.
func kingMove(b Board, from, to Square, p Piece, _ MoveRecord) Board {
	next := b.WithPieceMoved(from, to)
	dc := to.Col - from.Col
	if p.HasMoved || (dc != 2 && dc != -2) {
		return next
	}
	rookFrom, rookTo := Sq(from.Row, boardSize-1), Sq(from.Row, to.Col-1)
	if dc < 0 {
		rookFrom, rookTo = Sq(from.Row, 0), Sq(from.Row, to.Col+1)
	}
	rook, ok := next.PieceAt(rookFrom)
	if !ok || rook.Kind != Rook || rook.Color != p.Color {
		return next
	}
	return next.WithPieceMoved(rookFrom, rookTo)
}

// pawnMove removes an en passant victim from last.To, which differs from
// the pawn's own destination, and promotes to a queen on the far rank.
func pawnMove(b Board, from, to Square, p Piece, last MoveRecord) Board {
	next := b
	if ep, ok := enPassantTarget(from, p, last); ok && ep == to {
		next = next.Remove(last.To)
	}
	next = next.WithPieceMoved(from, to)
	if to.Row == p.Color.PromotionRow() {
		next = next.Put(to, NewPiece(Queen, p.Color))
	}
	return next
}
