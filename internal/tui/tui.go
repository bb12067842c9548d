package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/service"
	"github.com/MKhiriev/go-chat-gate/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Gate == nil || services.Login == nil || services.API == nil {
		return nil, errors.New("tui: client services are not initialized")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run evaluates the access gate and runs the terminal program until the user
// quits or ctx is cancelled. A quit by the user is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	if err := t.services.Gate.Init(ctx); err != nil {
		return fmt.Errorf("access gate init: %w", err)
	}
	t.logger.Info().Bool("authorized", t.services.Gate.Authorized()).Msg("access gate evaluated")

	root := NewGateModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(GateModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
