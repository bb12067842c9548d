// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the authentication service and with the forwarding gateway.
//
// [AuthAdapter] covers the two endpoints of the login protocol (public key
// and login); [GatewayAdapter] issues authenticated application traffic
// through the gateway. Both are implemented over HTTP/REST with resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrGatewayTimeout] for 504).
// Failures that never produced a response wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter defines communication with the authentication service.
type AuthAdapter interface {
	// GetPublicKey fetches the public key generated for cacheKey:
	// GET <base>/getPublicKey?cacheKey=<cacheKey>.
	// An empty Data in the result means the service has no key to offer.
	GetPublicKey(ctx context.Context, cacheKey string) (models.PublicKeyResponse, error)

	// Login posts the encrypted credentials: POST <base>/login.
	// A service-side rejection is not an error: it is reported through
	// the Message field of the response, including for non-2xx responses
	// that carry a JSON message.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
}

// GatewayAdapter defines authenticated application traffic through the
// forwarding gateway.
type GatewayAdapter interface {
	// Probe sends GET path with the bearer token. On a non-2xx response
	// the result is still filled and the mapped status error is returned.
	Probe(ctx context.Context, token, path string) (models.ProbeResult, error)
}
