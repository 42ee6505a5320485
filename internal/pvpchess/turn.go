package pvpchess

import (
	"github.com/park285/Cheese-Chess-Core/internal/chess"
)

// AttemptMove runs one full move on b without touching any controller
// state. The checks follow the turn state machine: ownership of the piece,
// destination not friendly, destination among the candidates, then either
// the king-capture win or the piece's mover.
func AttemptMove(b chess.Board, from, to chess.Square, last chess.MoveRecord, side chess.Color) MoveResult {
	if !chess.IsOnBoard(from) || !chess.IsOnBoard(to) {
		return rejected(ReasonOffBoard)
	}
	p, ok := b.PieceAt(from)
	if !ok {
		return rejected(ReasonEmptySquare)
	}
	if p.Color != side {
		return rejected(ReasonNotYourTurn)
	}
	occupant, occupied := b.PieceAt(to)
	if occupied && occupant.Color == side {
		return rejected(ReasonOwnPiece)
	}
	if !chess.IsCandidate(b, from, to, last) {
		return rejected(ReasonNotCandidate)
	}

	// the mover is never invoked on a king capture
	if occupied && occupant.Kind == chess.King {
		return MoveResult{Board: b, Captured: occupant, Outcome: Won(side)}
	}

	return MoveResult{
		Board:    chess.ApplyMove(b, from, to, last),
		Entry:    chess.MoveRecord{Piece: p, From: from, To: to},
		Captured: capturedBy(b, p, from, to, last),
		Outcome:  InProgress,
	}
}

// capturedBy returns the piece removed by moving p from -> to. En passant
// victims sit on last.To rather than on the destination.
func capturedBy(b chess.Board, p chess.Piece, from, to chess.Square, last chess.MoveRecord) chess.Piece {
	if occupant, ok := b.PieceAt(to); ok {
		return occupant
	}
	if p.Kind != chess.Pawn || from.Col == to.Col || !last.IsDoublePawnPush() {
		return chess.Piece{}
	}
	if victim, ok := b.PieceAt(last.To); ok && victim.Color != p.Color {
		return victim
	}
	return chess.Piece{}
}
