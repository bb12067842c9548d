// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// chat client and the forwarding gateway. It is populated by merging values
// from built-in defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client application settings such as the identity hash key.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses and timeout used by the client to reach the
	// authentication service and the gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the client-local credential store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Gateway holds listen address, upstream target and timeouts of the
	// forwarding gateway.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client application-level values.
type App struct {
	// IdentityHashKey is the HMAC key used to hash the username before it is
	// stored as the local user identity.
	// Env: APP_IDENTITY_HASH_KEY
	IdentityHashKey string `env:"IDENTITY_HASH_KEY"`

	// ProbePath is the upstream path requested through the gateway from the
	// protected home screen (e.g. "/v1/models").
	// Env: APP_PROBE_PATH
	ProbePath string `env:"PROBE_PATH"`
}

// Adapter holds client transport settings.
type Adapter struct {
	// AuthAddress is the base URL of the authentication service
	// (e.g. "https://auth.example.com").
	// Env: ADAPTER_AUTH_ADDRESS
	AuthAddress string `env:"AUTH_ADDRESS"`

	// AuthBasePath is the path prefix of the key and login endpoints
	// (e.g. "admin/user").
	// Env: ADAPTER_AUTH_BASE_PATH
	AuthBasePath string `env:"AUTH_BASE_PATH"`

	// GatewayAddress is the base URL of the forwarding gateway used for
	// application traffic.
	// Env: ADAPTER_GATEWAY_ADDRESS
	GatewayAddress string `env:"GATEWAY_ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the client-local credential store.
type Storage struct {
	// Backend selects the store implementation: "sqlite" or "bolt".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the database file settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database file.
type DB struct {
	// DSN is the database file path (SQLite DSN or bbolt file).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Gateway holds the forwarding gateway settings.
type Gateway struct {
	// Address is the TCP address the gateway listens on, "host:port" or ":port".
	// Env: GATEWAY_ADDRESS
	Address string `env:"ADDRESS"`

	// UpstreamURL is the fixed upstream origin every request is relayed to.
	// Env: GATEWAY_UPSTREAM_URL
	UpstreamURL string `env:"UPSTREAM_URL"`

	// UpstreamTimeout bounds a single forwarded call, including reading the
	// upstream response headers.
	// Env: GATEWAY_UPSTREAM_TIMEOUT
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of in-flight requests.
	// Env: GATEWAY_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
