package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrTransport wraps failures where no HTTP response was received
	// (connection refused, DNS, timeout, cancelled context).
	ErrTransport = errors.New("transport error")

	// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodingResponse = errors.New("error decoding response")

	ErrInvalidAddress = errors.New("invalid adapter address")
)
