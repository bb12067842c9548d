package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-gate/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL      = 2 * time.Second
	probeBodyWidth = 60
)

// HomeModel is the protected screen shown while a session token is stored.
type HomeModel struct {
	ctx   context.Context
	login service.ClientLoginService
	api   service.ClientAPIService
	copy  func(string) error

	identity string
	probing  bool
	probe    string
	status   string
	errMsg   string
}

func NewHomeModel(ctx context.Context, login service.ClientLoginService, api service.ClientAPIService) *HomeModel {
	return &HomeModel{
		ctx:   ctx,
		login: login,
		api:   api,
		copy:  clipboard.WriteAll,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case probeDoneMsg:
		m.probing = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.probe = fmt.Sprintf("%d %s", msg.result.StatusCode, fitText(strings.TrimSpace(msg.result.Body), probeBodyWidth))
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeLoginError(msg.err)
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.probe):
			if m.probing {
				return m, nil
			}
			m.probing = true
			m.errMsg = ""
			return m, m.cmdProbe()
		case key.Matches(msg, keys.copy):
			if m.identity == "" {
				m.status = "nothing to copy"
				return m, clearStatusAfter()
			}
			if err := m.copy(m.identity); err != nil {
				m.errMsg = fmt.Sprintf("copy failed: %v", err)
				return m, nil
			}
			m.status = "copied"
			return m, clearStatusAfter()
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	b.WriteString("Identity │ ")
	b.WriteString(valueOrDash(fitText(m.identity, probeBodyWidth)))
	b.WriteString("\n")
	b.WriteString("Probe    │ ")
	if m.probing {
		b.WriteString("...")
	} else {
		b.WriteString(valueOrDash(m.probe))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "r: probe │ c: copy identity │ l: log out │ v: about")
}

// setIdentity resets the screen for a freshly evaluated session.
func (m *HomeModel) setIdentity(identity string) {
	m.identity = identity
	m.probe = ""
	m.status = ""
	m.errMsg = ""
}

func (m *HomeModel) cmdProbe() tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		result, err := api.Probe(ctx)
		return probeDoneMsg{result: result, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	login := m.login

	return func() tea.Msg {
		return logoutDoneMsg{err: login.Logout(ctx)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
