package chesspresenter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

// Presenter delivers formatted messages and the board without coupling to the command layer.
type Presenter struct {
	sendMessage func(message string) error
	formatter   *Formatter
}

func NewPresenter(sendMessage func(message string) error, formatter *Formatter) *Presenter {
	return &Presenter{
		sendMessage: sendMessage,
		formatter:   formatter,
	}
}

// NewWriterPresenter sends every message to w followed by a newline.
// Writes are serialised; the reset timer may print from its own goroutine.
func NewWriterPresenter(w io.Writer, formatter *Formatter) *Presenter {
	var mu sync.Mutex
	return NewPresenter(func(message string) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintln(w, message)
		return err
	}, formatter)
}

func (p *Presenter) Formatter() *Formatter { return p.formatter }

// Message sends a plain text block; blank text is dropped.
func (p *Presenter) Message(message string) error {
	if p == nil || p.sendMessage == nil {
		return nil
	}
	if strings.TrimSpace(message) == "" {
		return nil
	}
	return p.sendMessage(message)
}

// Board sends message, then the drawn board and the status lines.
func (p *Presenter) Board(message string, state *chessdto.SessionState) error {
	if p == nil {
		return nil
	}
	if err := p.Message(message); err != nil {
		return err
	}
	if state == nil || p.formatter == nil {
		return nil
	}
	return p.Message(p.formatter.Board(state) + p.formatter.Status(state))
}
