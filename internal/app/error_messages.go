// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// client screens and the gateway handlers.
//
// All Msg* constants are human-readable message strings that are shown to
// the user or written into HTTP response bodies. Keeping them in one place
// ensures consistent wording throughout the application.
package app

// Client login messages.
const (
	// MsgEnterUsername is shown when the login form is submitted without a
	// username. No request is sent.
	MsgEnterUsername = "please enter username"

	// MsgEnterPassword is shown when the login form is submitted without a
	// password. No request is sent.
	MsgEnterPassword = "please enter password"

	// MsgServiceUnavailable is shown when the authentication service could
	// not provide a public key for the attempt.
	MsgServiceUnavailable = "authentication service unavailable"

	// MsgEncryptionFailed is shown when the password could not be encrypted
	// with the service key.
	MsgEncryptionFailed = "encryption error"

	// MsgLoginFailed is the fallback for a rejected login that carries no
	// service message.
	MsgLoginFailed = "login failed"

	// MsgStorageFailed is shown when the local credential store cannot be
	// read or written.
	MsgStorageFailed = "local credential storage failed"

	// MsgLoginInProgress is shown when a submit arrives while a previous
	// attempt is still running.
	MsgLoginInProgress = "login already in progress"

	// MsgVerificationRequired is the title of the login screen.
	MsgVerificationRequired = "Verification required"

	// MsgVerificationHint is the subtitle of the login screen.
	MsgVerificationHint = "An account permit is required to use this application."
)

// Gateway messages written as {"message": ...} bodies.
const (
	// MsgUpstreamTimeout is returned with 504 when the upstream did not
	// answer within the configured timeout.
	MsgUpstreamTimeout = "upstream timeout"

	// MsgUpstreamUnreachable is returned with 502 for any other upstream
	// failure (refused connection, DNS, TLS, reset).
	MsgUpstreamUnreachable = "upstream unreachable"

	// MsgMalformedRequest is returned with 400 when the inbound request
	// cannot be forwarded (CONNECT, absolute-form or non-path target).
	MsgMalformedRequest = "malformed request"

	// MsgInternalServerError is returned when an unexpected gateway-side
	// failure occurs.
	MsgInternalServerError = "internal server error"
)
