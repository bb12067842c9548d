package tui

import (
	"context"

	"github.com/MKhiriev/go-chat-gate/internal/app"
	"github.com/MKhiriev/go-chat-gate/internal/service"
	"github.com/MKhiriev/go-chat-gate/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GateModel is the TUI root. It shows the home screen while the access gate
// reports a stored session and the verification screen otherwise:
// 1) handles global Ctrl+C quit
// 2) re-evaluates the gate after every login and logout
// 3) owns the build info and error overlays
// 4) delegates all other messages to the active page
type GateModel struct {
	ctx  context.Context
	gate service.AccessGate

	login *LoginModel
	home  *HomeModel

	authorized    bool
	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	overlay       *errorOverlayModel
}

// NewGateModel builds the root model from the last gate evaluation.
func NewGateModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) GateModel {
	g := GateModel{
		ctx:        ctx,
		gate:       services.Gate,
		login:      NewLoginModel(ctx, services.Login),
		home:       NewHomeModel(ctx, services.Login, services.API),
		authorized: services.Gate.Authorized(),
		buildInfo:  buildInfo,
	}
	if g.authorized {
		g.home.setIdentity(services.Gate.Identity())
	}
	return g
}

func (g GateModel) Init() tea.Cmd {
	return g.current().Init()
}

func (g GateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.quit) {
			g.quitByUser = true
			return g, tea.Quit
		}

		if g.overlay != nil {
			if key.Matches(keyMsg, keys.esc, keys.enter) {
				g.overlay = nil
			}
			return g, nil
		}

		if g.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) {
				g.showBuildInfo = false
			}
			return g, nil
		}

		if g.authorized && key.Matches(keyMsg, keys.info) {
			g.showBuildInfo = true
			return g, nil
		}
	}

	switch msg := msg.(type) {
	case loginDoneMsg:
		_, cmd := g.login.Update(msg)
		if msg.err != nil || msg.result.State != models.LoginSuccess {
			return g, cmd
		}
		next := g.evaluate()
		return g, tea.Batch(cmd, next)
	case logoutDoneMsg:
		_, cmd := g.home.Update(msg)
		next := g.evaluate()
		return g, tea.Batch(cmd, next)
	}

	_, cmd := g.current().Update(msg)
	return g, cmd
}

func (g GateModel) View() string {
	if g.showBuildInfo {
		return renderBuildInfoWindow(g.buildInfo)
	}
	if g.overlay != nil {
		return lipgloss.JoinVertical(lipgloss.Left, g.current().View(), "", g.overlay.View())
	}
	return g.current().View()
}

// evaluate re-reads the gate synchronously so the page switch happens in the
// same update that observed the login or logout.
func (g *GateModel) evaluate() tea.Cmd {
	wasAuthorized := g.authorized

	authorized, err := g.gate.Refresh(g.ctx)
	if err != nil {
		g.overlay = &errorOverlayModel{message: app.MsgStorageFailed}
	}
	g.authorized = authorized

	switch {
	case authorized:
		g.home.setIdentity(g.gate.Identity())
		return nil
	case wasAuthorized:
		g.showBuildInfo = false
		g.login.reset()
		return g.login.Init()
	default:
		return nil
	}
}

func (g GateModel) current() tea.Model {
	if g.authorized {
		return g.home
	}
	return g.login
}
