package pvpchess

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/Cheese-Chess-Core/internal/chess"
	"github.com/park285/Cheese-Chess-Core/internal/obslog"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

// Controller owns one hot-seat game: the board, the side to move, the
// ledger, the capture lists and the outcome. All methods are safe to call
// while a scheduled reset fires on its timer goroutine.
type Controller struct {
	mu sync.Mutex

	id       string
	board    chess.Board
	side     chess.Color
	phase    Phase
	selected chess.Square
	offered  []chess.Square
	ledger   Ledger
	captures Captures
	outcome  Outcome

	resetDelay time.Duration
	onReset    func(*chessdto.SessionState)
	timer      *time.Timer
	generation uint64

	logger *zap.Logger
}

type Option func(*Controller)

var noSquare = chess.Sq(-1, -1)

// WithLogger overrides the global obslog logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithResetDelay makes a king capture schedule a full reset after d.
// Zero leaves the finished game on the board until Reset is called.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithOnReset registers a hook called with the fresh state after every
// reset. It runs outside the controller lock.
func WithOnReset(fn func(*chessdto.SessionState)) Option {
	return func(c *Controller) { c.onReset = fn }
}

func NewController(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	c.id = uuid.NewString()
	c.clear()
	return c
}

func (c *Controller) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return obslog.L()
}

func (c *Controller) clear() {
	c.board = chess.InitialBoard()
	c.side = chess.White
	c.phase = PhaseAwaitingSelection
	c.selected = chess.Square{}
	c.offered = nil
	c.ledger.Reset()
	c.captures.Reset()
	c.outcome = InProgress
}

// Select picks up the piece on sq. Rejections leave the controller as it
// was; on acceptance the candidate set is computed and offered.
func (c *Controller) Select(sq chess.Square) Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectLocked(sq)
}

func (c *Controller) selectLocked(sq chess.Square) Selection {
	sel := Selection{Square: sq}
	switch {
	case c.outcome.Finished():
		sel.Reason = ReasonGameOver
	case !chess.IsOnBoard(sq):
		sel.Reason = ReasonOffBoard
	}
	if sel.Reason != ReasonNone {
		return sel
	}
	p, ok := c.board.PieceAt(sq)
	if !ok {
		sel.Reason = ReasonEmptySquare
		return sel
	}
	sel.Piece = p
	if p.Color != c.side {
		sel.Reason = ReasonNotYourTurn
		return sel
	}
	c.selected = sq
	c.offered = chess.LegalDestinations(c.board, sq, c.ledger.Last())
	c.phase = PhaseMoveOffered
	sel.Destinations = append([]chess.Square(nil), c.offered...)
	return sel
}

// Drop places the selected piece on to. Whatever the result, the
// controller returns to awaiting a selection.
func (c *Controller) Drop(to chess.Square) MoveResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropLocked(to)
}

func (c *Controller) dropLocked(to chess.Square) MoveResult {
	if c.outcome.Finished() {
		return c.reject(noSquare, to, ReasonGameOver)
	}
	if c.phase != PhaseMoveOffered {
		return c.reject(noSquare, to, ReasonNoSelection)
	}
	from, offered := c.selected, c.offered
	c.selected, c.offered = chess.Square{}, nil
	c.phase = PhaseAwaitingSelection

	if !containsSquare(offered, to) {
		reason := ReasonNotCandidate
		if !chess.IsOnBoard(to) {
			reason = ReasonOffBoard
		} else if p, ok := c.board.PieceAt(to); ok && p.Color == c.side {
			reason = ReasonOwnPiece
		}
		return c.reject(from, to, reason)
	}

	res := AttemptMove(c.board, from, to, c.ledger.Last(), c.side)
	if !res.Accepted() {
		return c.reject(from, to, res.Reason)
	}
	c.commit(from, to, res)
	return res
}

// Move is Select followed by Drop under a single lock.
func (c *Controller) Move(from, to chess.Square) MoveResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveLocked(from, to)
}

func (c *Controller) moveLocked(from, to chess.Square) MoveResult {
	if sel := c.selectLocked(from); !sel.Accepted() {
		return c.reject(from, to, sel.Reason)
	}
	return c.dropLocked(to)
}

// commit stores an accepted result. A win freezes the board and, when a
// reset delay is configured, schedules the next game.
func (c *Controller) commit(from, to chess.Square, res MoveResult) {
	c.phase = PhaseCommitted
	defer func() { c.phase = PhaseAwaitingSelection }()

	if res.Outcome.Finished() {
		c.outcome = res.Outcome
		c.log().Info("chess_game_won",
			zap.String("game_id", c.id),
			zap.String("winner", string(res.Outcome.Winner)),
			zap.String("move", from.String()+to.String()),
			zap.Int("moves", c.ledger.Len()),
		)
		if c.resetDelay > 0 {
			c.scheduleLocked(c.resetDelay)
		}
		return
	}

	mover := c.side
	c.board = res.Board
	c.captures.Record(mover, res.Captured)
	c.ledger.Commit(res.Entry)
	c.side = mover.Opposite()
	c.log().Info("chess_move",
		zap.String("game_id", c.id),
		zap.String("color", string(mover)),
		zap.String("piece", res.Entry.Piece.Kind.String()),
		zap.String("move", res.Entry.String()),
		zap.String("captured", res.Captured.String()),
		zap.String("turn", string(c.side)),
		zap.String("phase", string(c.phase)),
	)
}

func (c *Controller) reject(from, to chess.Square, reason Reason) MoveResult {
	c.log().Debug("chess_move_rejected",
		zap.String("game_id", c.id),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("reason", string(reason)),
		zap.String("turn", string(c.side)),
	)
	return rejected(reason)
}

// LegalDestinations is a read-only query for the piece on sq, whichever
// side it belongs to.
func (c *Controller) LegalDestinations(sq chess.Square) []chess.Square {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chess.LegalDestinations(c.board, sq, c.ledger.Last())
}

// Reset restores the initial position and cancels a pending scheduled
// reset. Resetting a fresh game changes nothing.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.cancelLocked()
	state := c.resetLocked("manual")
	c.mu.Unlock()
	c.notifyReset(state)
}

// ScheduleReset resets the game after d. A later Reset or ScheduleReset
// cancels it. d <= 0 resets immediately.
func (c *Controller) ScheduleReset(d time.Duration) {
	if d <= 0 {
		c.Reset()
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scheduleLocked(d)
}

func (c *Controller) scheduleLocked(d time.Duration) {
	c.cancelLocked()
	gen := c.generation
	c.timer = time.AfterFunc(d, func() { c.fire(gen) })
	c.log().Debug("chess_reset_scheduled",
		zap.String("game_id", c.id),
		zap.Duration("delay", d),
	)
}

// cancelLocked stops the pending timer and invalidates any callback that
// already started.
func (c *Controller) cancelLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.generation++
	state := c.resetLocked("scheduled")
	c.mu.Unlock()
	c.notifyReset(state)
}

func (c *Controller) resetLocked(trigger string) *chessdto.SessionState {
	if c.ledger.Len() > 0 || c.outcome.Finished() {
		c.id = uuid.NewString()
	}
	c.clear()
	c.log().Info("chess_game_reset",
		zap.String("game_id", c.id),
		zap.String("trigger", trigger),
	)
	return c.snapshotLocked()
}

func (c *Controller) notifyReset(state *chessdto.SessionState) {
	if c.onReset != nil {
		c.onReset(state)
	}
}

// Snapshot returns the presentation view of the current state.
func (c *Controller) Snapshot() *chessdto.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) Board() chess.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board
}

func (c *Controller) Turn() chess.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.side
}

// Phase reports AWAITING_SELECTION or MOVE_OFFERED. Commits complete
// under the lock, so COMMITTED is never observed here.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

func (c *Controller) LastMove() chess.MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Last()
}

// Captured returns the pieces taken by color.
func (c *Controller) Captured(color chess.Color) []chess.Piece {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.captures.By(color)
}

func (c *Controller) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

func containsSquare(sqs []chess.Square, sq chess.Square) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}
