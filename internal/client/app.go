package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/tui"
)

type App struct {
	ui      UI
	closers []io.Closer

	logger *logger.Logger
}

// NewApp builds a client around ui. closers are released in order once Run
// returns.
func NewApp(ui UI, logger *logger.Logger, closers ...io.Closer) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}
	return &App{ui: ui, closers: closers, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		for _, c := range a.closers {
			if closeErr := c.Close(); closeErr != nil {
				a.logger.Error().Err(closeErr).Msg("error closing client resource")
				err = errors.Join(err, fmt.Errorf("close: %w", closeErr))
			}
		}
	}()

	a.logger.Info().Msg("client started")
	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("client stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
