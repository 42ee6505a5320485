package chesspresenter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/park285/Cheese-Chess-Core/internal/chess"
	"github.com/park285/Cheese-Chess-Core/internal/msgcat"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

const (
	emptySquare      = "·"
	recentMovesLimit = 8
	noCapturesMarker = "-"
	boardFilesLegend = "a b c d e f g h"
)

// Options controls how the board is drawn.
type Options struct {
	Glyphs      bool
	Coordinates bool
}

// Formatter renders chess DTOs into terminal text blocks.
type Formatter struct {
	cat  *msgcat.Catalog
	opts Options
}

func NewFormatter(cat *msgcat.Catalog, opts Options) *Formatter {
	return &Formatter{cat: cat, opts: opts}
}

func (f *Formatter) text(key string, data map[string]any) string {
	if f == nil || f.cat == nil {
		return key
	}
	return f.cat.Text(key, data)
}

func (f *Formatter) Banner() string { return f.text("chess.banner", nil) }

func (f *Formatter) Help() string { return f.text("chess.help", nil) }

func (f *Formatter) Bye() string { return f.text("chess.bye", nil) }

func (f *Formatter) Prompt(state *chessdto.SessionState) string {
	if state == nil {
		return "> "
	}
	return f.text("chess.prompt", map[string]any{"Turn": state.Turn})
}

// Board draws the position of state, White at the bottom. The squares of
// the last move are bracketed.
func (f *Formatter) Board(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	b, err := chess.ParseBoard(state.FEN)
	if err != nil {
		return state.FEN
	}
	marked := lastMoveSquares(state.LastMove)

	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if f.opts.Coordinates {
			sb.WriteString(fmt.Sprintf("%d ", 8-row))
		}
		for col := 0; col < 8; col++ {
			sq := chess.Sq(row, col)
			cell := emptySquare
			if p, ok := b.PieceAt(sq); ok {
				cell = f.pieceToken(p)
			}
			if marked[sq] {
				sb.WriteString("[" + cell + "]")
			} else {
				sb.WriteString(" " + cell + " ")
			}
		}
		sb.WriteString("\n")
	}
	if f.opts.Coordinates {
		sb.WriteString("   " + strings.ReplaceAll(boardFilesLegend, " ", "  ") + "\n")
	}
	return sb.String()
}

func (f *Formatter) pieceToken(p chess.Piece) string {
	if f.opts.Glyphs {
		if s := p.Symbol(); s != "" {
			return s
		}
	}
	return p.Letter()
}

// Move describes an accepted move, a win, or a rejection.
func (f *Formatter) Move(summary *chessdto.MoveSummary) string {
	if summary == nil {
		return ""
	}
	from, to := splitMove(summary.Move)
	turn := ""
	if summary.State != nil {
		turn = titleCase(summary.State.Turn)
	}
	if !summary.Accepted {
		return f.text("reject."+summary.Reason, map[string]any{"From": from, "To": to, "Turn": turn})
	}
	if summary.Finished {
		return f.text("chess.won", map[string]any{"Winner": titleCase(summary.Winner)})
	}

	mover := chess.White
	if summary.State != nil && summary.State.Turn == string(chess.White) {
		mover = chess.Black
	}
	data := map[string]any{
		"Color": titleCase(string(mover)),
		"Piece": summary.Piece,
		"Move":  summary.Move,
	}
	if summary.Captured != "" {
		data["Captured"] = summary.Captured
		return f.text("chess.captured", data)
	}
	return f.text("chess.moved", data)
}

// Status is the turn line followed by captures and recent moves.
func (f *Formatter) Status(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	var sb strings.Builder
	if state.Finished() {
		sb.WriteString(f.text("chess.won", map[string]any{"Winner": titleCase(state.Winner)}))
	} else {
		sb.WriteString(f.text("chess.turn", map[string]any{"Turn": titleCase(state.Turn)}))
	}
	sb.WriteString("\n")
	sb.WriteString(f.Captures(state))
	if len(state.MovesUCI) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.text("chess.history", map[string]any{"Moves": formatRecentMoves(state.MovesUCI)}))
	}
	return sb.String()
}

func (f *Formatter) Captures(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	return f.text("chess.captures", map[string]any{
		"White": formatCapturedSequence(state.Captured.White, state.Material.White),
		"Black": formatCapturedSequence(state.Captured.Black, state.Material.Black),
	})
}

func (f *Formatter) Destinations(square string, moves []string) string {
	if len(moves) == 0 {
		return f.text("chess.no_moves", map[string]any{"Square": square})
	}
	return f.text("chess.moves", map[string]any{"Square": square, "Moves": strings.Join(moves, " ")})
}

func (f *Formatter) Reset() string { return f.text("chess.reset", nil) }

func (f *Formatter) ResetScheduled(delay fmt.Stringer) string {
	return f.text("chess.reset_scheduled", map[string]any{"Delay": delay.String()})
}

func (f *Formatter) UnknownCommand(input string) string {
	return f.text("error.unknown_command", map[string]any{"Input": input})
}

// Error maps domain errors to catalog texts; anything else is shown as is.
func (f *Formatter) Error(err error) string {
	if err == nil {
		return ""
	}
	var de chessdto.DomainError
	if errors.As(err, &de) && de.Code != "" {
		key := "error." + de.Code
		if f.cat != nil && f.cat.Has(key) {
			return f.text(key, map[string]any{"Message": de.Error()})
		}
	}
	return err.Error()
}

func lastMoveSquares(move string) map[chess.Square]bool {
	from, to := splitMove(move)
	out := make(map[chess.Square]bool, 2)
	for _, s := range []string{from, to} {
		if sq, err := chess.ParseSquare(s); err == nil {
			out[sq] = true
		}
	}
	return out
}

func splitMove(move string) (string, string) {
	if len(move) != 4 {
		return "", ""
	}
	return move[:2], move[2:]
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatRecentMoves(moves []string) string {
	start := 0
	if len(moves) > recentMovesLimit {
		start = len(moves) - recentMovesLimit
	}
	parts := make([]string, 0, len(moves)-start+1)
	if start > 0 {
		parts = append(parts, "…")
	}
	for i := start; i < len(moves); i++ {
		if i%2 == 0 {
			parts = append(parts, fmt.Sprintf("%d.%s", i/2+1, moves[i]))
		} else {
			parts = append(parts, moves[i])
		}
	}
	return strings.Join(parts, " ")
}

func formatCapturedSequence(order []string, material int) string {
	if len(order) == 0 {
		return noCapturesMarker
	}
	return fmt.Sprintf("%s (+%d)", strings.Join(order, " "), material)
}
