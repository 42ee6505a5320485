package chess

// Generator lists candidate destinations for piece p standing on from.
type Generator func(b Board, from Square, p Piece, last MoveRecord) []Square

// Mover applies a pre-validated relocation and returns the next board.
type Mover func(b Board, from, to Square, p Piece, last MoveRecord) Board

// Rules is one catalog entry: the move generator and mover of a kind.
type Rules struct {
	Generate Generator
	Apply    Mover
}

var catalog = [...]Rules{
	Pawn:   {Generate: pawnMoves, Apply: pawnMove},
	Knight: {Generate: knightMoves, Apply: defaultMove},
	Bishop: {Generate: bishopMoves, Apply: defaultMove},
	Rook:   {Generate: rookMoves, Apply: defaultMove},
	Queen:  {Generate: queenMoves, Apply: defaultMove},
	King:   {Generate: kingMoves, Apply: kingMove},
}

// RulesFor returns the catalog entry of kind k.
func RulesFor(k Kind) (Rules, bool) {
	if int(k) >= len(catalog) || catalog[k].Generate == nil {
		return Rules{}, false
	}
	return catalog[k], true
}

// LegalDestinations returns the candidate squares of the piece on from, in
// a fixed order. Empty or off-board squares yield no moves.
func LegalDestinations(b Board, from Square, last MoveRecord) []Square {
	p, ok := b.PieceAt(from)
	if !ok {
		return nil
	}
	r, ok := RulesFor(p.Kind)
	if !ok {
		return nil
	}
	return r.Generate(b, from, p, last)
}

// IsCandidate reports whether to is among the destinations of the piece on from.
func IsCandidate(b Board, from, to Square, last MoveRecord) bool {
	for _, sq := range LegalDestinations(b, from, last) {
		if sq == to {
			return true
		}
	}
	return false
}

// ApplyMove runs the piece's mover. The destination is trusted to come
// from LegalDestinations; the input board is left untouched.
func ApplyMove(b Board, from, to Square, last MoveRecord) Board {
	p, ok := b.PieceAt(from)
	if !ok {
		return b
	}
	r, ok := RulesFor(p.Kind)
	if !ok {
		return b
	}
	return r.Apply(b, from, to, p, last)
}
