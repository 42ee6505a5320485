package chessbuilder

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/park285/Cheese-Chess-Core/internal/adapter/chesspresenter"
	"github.com/park285/Cheese-Chess-Core/internal/config"
	"github.com/park285/Cheese-Chess-Core/internal/msgcat"
	"github.com/park285/Cheese-Chess-Core/internal/pvpchess"
	"github.com/park285/Cheese-Chess-Core/pkg/chessdto"
)

type Deps struct {
	Controller *pvpchess.Controller
	Catalog    *msgcat.Catalog
	Formatter  *chesspresenter.Formatter
	Presenter  *chesspresenter.Presenter
	Config     *config.AppConfig
}

// New wires the message catalog, the presenter writing to out and a
// controller whose scheduled resets are announced through the presenter.
func New(cfg *config.AppConfig, logger *zap.Logger, out io.Writer) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("init message catalog: %w", err)
	}
	formatter := chesspresenter.NewFormatter(cat, chesspresenter.Options{
		Glyphs:      cfg.BoardGlyphs,
		Coordinates: cfg.ShowCoordinates,
	})
	presenter := chesspresenter.NewWriterPresenter(out, formatter)

	controller := pvpchess.NewController(
		pvpchess.WithLogger(logger),
		pvpchess.WithResetDelay(cfg.ResetDelay),
		pvpchess.WithOnReset(func(state *chessdto.SessionState) {
			if err := presenter.Board(formatter.Reset(), state); err != nil {
				logger.Warn("chess_reset_present_failed", zap.Error(err))
			}
		}),
	)

	logger.Info("chess_init",
		zap.String("game_id", controller.ID()),
		zap.Duration("reset_delay", cfg.ResetDelay),
		zap.String("messages_dir", cfg.MessagesDir),
		zap.Bool("glyphs", cfg.BoardGlyphs),
	)

	return &Deps{
		Controller: controller,
		Catalog:    cat,
		Formatter:  formatter,
		Presenter:  presenter,
		Config:     cfg,
	}, nil
}
