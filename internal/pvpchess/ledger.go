package pvpchess

import (
	"github.com/park285/Cheese-Chess-Core/internal/chess"
)

// Ledger keeps the last committed move, the only history the rules read,
// plus a display log of raw coordinate strings.
type Ledger struct {
	last chess.MoveRecord
	log  []string
}

// Last returns the most recent committed move; zero before the first move.
func (l *Ledger) Last() chess.MoveRecord { return l.last }

// Commit overwrites the single slot and appends to the display log.
func (l *Ledger) Commit(rec chess.MoveRecord) {
	if rec.IsZero() {
		return
	}
	l.last = rec
	l.log = append(l.log, rec.String())
}

// History returns a copy of the display log.
func (l *Ledger) History() []string {
	return append([]string(nil), l.log...)
}

func (l *Ledger) Len() int { return len(l.log) }

func (l *Ledger) Reset() {
	l.last = chess.MoveRecord{}
	l.log = nil
}
