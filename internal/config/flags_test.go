package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 3333}, expected: ":3333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":3333", expectedAddr: NetAddress{Port: 3333}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number"},
		{name: "port out of range", input: "localhost:70000", expectError: true, errorMsg: "port number"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", expectError: true, errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", ":3334",
		"-u", "https://upstream.example",
		"-upstream-timeout", "12s",
		"-shutdown-timeout", "3s",
		"-auth-address", "https://auth.example",
		"-auth-base-path", "admin/user",
		"-gateway-address", "http://localhost:3334",
		"-request-timeout", "7s",
		"-d", "gate.db",
		"-storage-backend", "bolt",
		"-identity-hash-key", "k",
		"-probe-path", "/v1/models",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, ":3334", cfg.Gateway.Address)
	assert.Equal(t, "https://upstream.example", cfg.Gateway.UpstreamURL)
	assert.Equal(t, 12*time.Second, cfg.Gateway.UpstreamTimeout)
	assert.Equal(t, 3*time.Second, cfg.Gateway.ShutdownTimeout)
	assert.Equal(t, "https://auth.example", cfg.Adapter.AuthAddress)
	assert.Equal(t, "admin/user", cfg.Adapter.AuthBasePath)
	assert.Equal(t, "http://localhost:3334", cfg.Adapter.GatewayAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "gate.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, "k", cfg.App.IdentityHashKey)
	assert.Equal(t, "/v1/models", cfg.App.ProbePath)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
