// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-chat-gate/internal/app"
	"github.com/MKhiriev/go-chat-gate/internal/service"
	"github.com/MKhiriev/go-chat-gate/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputUsername = iota
	inputPassword
)

// LoginModel is the Bubble Tea model for the verification screen. It renders
// username and password inputs and submits them through the login service.
// The outcome arrives as a loginDoneMsg, which [GateModel] also observes to
// re-evaluate access.
type LoginModel struct {
	ctx   context.Context
	login service.ClientLoginService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the username input focused and a
// masked password input.
func NewLoginModel(ctx context.Context, login service.ClientLoginService) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		login:  login,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginDoneMsg  clears the password input and shows the outcome.
//   - tab/shift+tab moves focus between the inputs.
//   - enter         submits the form unless a submit is already running.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		m.inputs[inputPassword].SetValue("")
		m.errMsg = humanizeLoginError(done.err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(strings.TrimSpace(m.inputs[inputUsername].Value()), m.inputs[inputPassword].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(app.MsgVerificationHint))
	b.WriteString("\n\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[inputUsername].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[inputPassword].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(app.MsgVerificationRequired, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: log in")
}

// reset returns the form to its initial state after a logout.
func (m *LoginModel) reset() {
	m.submitting = false
	m.errMsg = ""
	m.inputs[inputPassword].SetValue("")
	m.inputs[m.focus].Blur()
	m.focus = inputUsername
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	login := m.login

	return func() tea.Msg {
		result, err := login.Submit(ctx, &models.Credentials{
			Username: username,
			Password: password,
		})
		return loginDoneMsg{result: result, err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
