// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the credential bundle persisted by the client-local store after
// a successful login.
type Session struct {
	// Token is the opaque session token issued by the authentication service.
	// The client knows no expiry; validity is decided by whoever receives it.
	Token string

	// Identity is the one-way hash of the username. It is display and
	// bookkeeping data only and never takes part in authorization.
	Identity string

	// Profile is the opaque role/profile blob.
	Profile string
}

// LoginState is a state of the login protocol state machine.
type LoginState int32

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	LoginSuccess
	LoginFailed
)

func (s LoginState) String() string {
	switch s {
	case LoginIdle:
		return "idle"
	case LoginSubmitting:
		return "submitting"
	case LoginSuccess:
		return "success"
	case LoginFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoginResult reports the terminal state reached by one submit.
// Done is true once the attempt resolved, so callers can stop any progress
// indicator regardless of the outcome. A rejected concurrent submit or a
// validation failure never reaches a terminal state and reports Idle.
type LoginResult struct {
	State LoginState
	Token string
	Done  bool
}
