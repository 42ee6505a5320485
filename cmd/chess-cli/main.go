package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/park285/Cheese-Chess-Core/internal/chessbuilder"
	appcfg "github.com/park285/Cheese-Chess-Core/internal/config"
	"github.com/park285/Cheese-Chess-Core/internal/obslog"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

func main() {
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer obslog.Sync()

	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	deps, err := chessbuilder.New(cfg, obslog.L(), os.Stdout)
	if err != nil {
		log.Fatalf("chess init error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- run(ctx, os.Stdin, os.Stdout, deps) }()

	select {
	case err := <-done:
		if err != nil {
			obslog.L().Error("chess_cli_exit", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
	}
	_ = deps.Presenter.Message(deps.Formatter.Bye())
}

// run reads commands from in until EOF, quit, or ctx is cancelled.
func run(ctx context.Context, in io.Reader, out io.Writer, deps *chessbuilder.Deps) error {
	f, p, c := deps.Formatter, deps.Presenter, deps.Controller

	if err := p.Board(f.Banner(), c.Snapshot()); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, f.Prompt(c.Snapshot()))
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return nil
		}
		if quit := handleCommand(deps, scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// handleCommand runs one input line and reports whether the loop should stop.
func handleCommand(deps *chessbuilder.Deps, line string) bool {
	f, p, c := deps.Formatter, deps.Presenter, deps.Controller

	raw := strings.TrimSpace(line)
	if raw == "" {
		return false
	}
	parts := strings.Fields(raw)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		_ = p.Message(f.Help())
	case "board", "status":
		_ = p.Board("", c.Snapshot())
	case "reset", "new":
		c.Reset()
	case "moves":
		if len(args) != 1 {
			_ = p.Message(f.UnknownCommand(raw))
			return false
		}
		dests, err := c.Destinations(chessdto.LegalMovesRequest{Square: args[0]})
		if err != nil {
			_ = p.Message(f.Error(err))
			return false
		}
		_ = p.Message(f.Destinations(strings.ToLower(args[0]), dests))
	default:
		handleMove(deps, raw)
	}
	return false
}

func handleMove(deps *chessbuilder.Deps, raw string) {
	f, p, c := deps.Formatter, deps.Presenter, deps.Controller

	req, err := chessdto.ParseMoveRequest(raw)
	if err != nil {
		_ = p.Message(f.UnknownCommand(raw))
		return
	}
	summary, err := c.Play(req)
	if err != nil {
		_ = p.Message(f.Error(err))
		return
	}
	if !summary.Accepted {
		_ = p.Message(f.Move(summary))
		return
	}
	_ = p.Board(f.Move(summary), summary.State)
	if summary.Finished && deps.Config.ResetDelay > 0 {
		_ = p.Message(f.ResetScheduled(deps.Config.ResetDelay))
	}
}
