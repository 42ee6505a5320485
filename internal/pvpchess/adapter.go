package pvpchess

import (
	"fmt"

	"github.com/park285/Cheese-Chess-Core/internal/chess"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

// Play is the boundary with the presentation layer: it parses the two
// picks and runs Move. Coordinates outside the board are ignored with an
// invalid_square error; illegal moves come back as a rejected summary.
// The summary state is taken under the same lock as the move, so a
// scheduled reset never shows up in it.
func (c *Controller) Play(req chessdto.MoveRequest) (*chessdto.MoveSummary, error) {
	from, err := parsePick(req.From)
	if err != nil {
		return nil, err
	}
	to, err := parsePick(req.To)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	piece, _ := c.board.PieceAt(from)
	res := c.moveLocked(from, to)
	summary := &chessdto.MoveSummary{
		State:    c.snapshotLocked(),
		Move:     from.String() + to.String(),
		Piece:    piece.Symbol(),
		Accepted: res.Accepted(),
		Reason:   string(res.Reason),
		Captured: res.Captured.Symbol(),
		Finished: res.Outcome.Finished(),
		Winner:   string(res.Outcome.Winner),
	}
	return summary, nil
}

// Destinations answers a legal-moves query in algebraic form.
func (c *Controller) Destinations(req chessdto.LegalMovesRequest) ([]string, error) {
	sq, err := parsePick(req.Square)
	if err != nil {
		return nil, err
	}
	dests := c.LegalDestinations(sq)
	out := make([]string, 0, len(dests))
	for _, d := range dests {
		out = append(out, d.String())
	}
	return out, nil
}

func parsePick(s string) (chess.Square, error) {
	sq, err := chess.ParseSquare(s)
	if err != nil {
		return chess.Square{}, chessdto.DomainError{
			Code:    chessdto.CodeInvalidSquare,
			Message: fmt.Sprintf("invalid square %q", s),
		}
	}
	return sq, nil
}

func (c *Controller) snapshotLocked() *chessdto.SessionState {
	status := StatusActive
	if c.outcome.Finished() {
		status = StatusFinished
	}
	state := &chessdto.SessionState{
		GameID:    c.id,
		FEN:       c.board.FEN(),
		Turn:      string(c.side),
		Phase:     string(c.phase),
		Status:    string(status),
		Winner:    string(c.outcome.Winner),
		MovesUCI:  c.ledger.History(),
		LastMove:  c.ledger.Last().String(),
		MoveCount: c.ledger.Len(),
		Material:  c.captures.Material(),
		Captured:  c.captures.DTO(),
	}
	if c.phase == PhaseMoveOffered {
		state.Selected = c.selected.String()
	}
	return state
}
