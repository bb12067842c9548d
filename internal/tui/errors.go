// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-chat-gate/internal/app"
	"github.com/MKhiriev/go-chat-gate/internal/service"
	"github.com/MKhiriev/go-chat-gate/internal/validators"
)

const msgNetworkUnavailable = "network unavailable or server unreachable"

// humanizeLoginError turns a login service error into the toast shown on the
// login screen. Rejection messages of the authentication service are shown
// verbatim.
func humanizeLoginError(err error) string {
	if err == nil {
		return ""
	}

	var rejected *service.AuthRejectedError
	switch {
	case errors.Is(err, validators.ErrEmptyUsername):
		return app.MsgEnterUsername
	case errors.Is(err, validators.ErrEmptyPassword):
		return app.MsgEnterPassword
	case errors.As(err, &rejected):
		if rejected.Message != "" {
			return rejected.Message
		}
		return app.MsgLoginFailed
	case errors.Is(err, service.ErrEncryption):
		return app.MsgEncryptionFailed
	case errors.Is(err, service.ErrStorage):
		return app.MsgStorageFailed
	case errors.Is(err, service.ErrLoginInProgress):
		return app.MsgLoginInProgress
	case errors.Is(err, service.ErrServiceUnavailable):
		return app.MsgServiceUnavailable
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgNetworkUnavailable
	}

	return err.Error()
}
