package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing auth service address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN, in-memory DSN or unknown backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, missing identity hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidGatewayConfigs indicates an empty listen address or a
	// non-positive upstream timeout.
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidUpstreamConfigs indicates an upstream URL without an http(s)
	// scheme or host.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
)
