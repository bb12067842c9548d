package tui

import (
	"github.com/MKhiriev/go-chat-gate/models"
)

type loginDoneMsg struct {
	result models.LoginResult
	err    error
}

type probeDoneMsg struct {
	result models.ProbeResult
	err    error
}

type logoutDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
