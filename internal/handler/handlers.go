package handler

import (
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/handler/http"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(cfg config.GatewayConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
