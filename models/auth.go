// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// PublicKeyResponse is the body returned by the authentication service key
// endpoint: GET <auth>/getPublicKey?cacheKey=<id>.
type PublicKeyResponse struct {
	// Data holds the public key (PEM or base64 DER). Empty means the service
	// has no key available for the attempt.
	Data string `json:"data"`

	// Message carries an optional service-side error description.
	Message string `json:"message,omitempty"`
}

// LoginRequest is the body of POST <auth>/login. Password is the base64
// ciphertext of the password digest, never the plaintext.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	CacheKey string `json:"cacheKey"`
}

// LoginResponse is the body returned by the login endpoint. A non-empty
// Message means the service rejected the attempt; otherwise Data carries the
// issued session.
type LoginResponse struct {
	Data    *LoginData `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
}

// LoginData is the success payload of [LoginResponse].
type LoginData struct {
	// Token is the opaque session token.
	Token string `json:"token"`

	// Info is an optional role/profile document. It is persisted verbatim as
	// the profile blob and never interpreted by the client.
	Info json.RawMessage `json:"info,omitempty"`
}

// Rejected reports whether the service answered with an error message.
func (r LoginResponse) Rejected() bool {
	return strings.TrimSpace(r.Message) != ""
}

// Profile returns the raw profile document or an empty string when the
// response carries none.
func (d LoginData) Profile() string {
	raw := strings.TrimSpace(string(d.Info))
	if raw == "" || raw == "null" {
		return ""
	}
	return raw
}

// ErrorResponse is the JSON body written by the gateway for relay failures,
// shaped like the service's own error responses.
type ErrorResponse struct {
	Message string `json:"message"`
}
