package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/handler"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.GatewayConfig
	}{
		{name: "nil handlers", cfg: config.GatewayConfig{Address: ":3333"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.GatewayConfig{Address: ":3333"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong "+r.URL.Path)
	}))
	defer upstream.Close()

	cfg := config.GatewayConfig{
		Address:         "127.0.0.1:0",
		UpstreamURL:     upstream.URL,
		UpstreamTimeout: time.Second,
		ShutdownTimeout: time.Second,
	}
	handlers, err := handler.NewHandlers(cfg, logger.Nop())
	require.NoError(t, err)

	srv := newHTTPServer(handlers.HTTP.Init(), cfg, logger.Nop())
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- srv.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong /ping", string(body))

	srv.Shutdown()

	select {
	case err = <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewHTTPServer_DefaultShutdownTimeout(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.GatewayConfig{Address: ":0"}, logger.Nop())
	assert.Equal(t, defaultShutdownTimeout, srv.shutdownTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.GatewayConfig{
		Address:         "127.0.0.1:0",
		UpstreamURL:     "http://upstream.example",
		UpstreamTimeout: time.Second,
		ShutdownTimeout: time.Second,
	}
	handlers, err := handler.NewHandlers(cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
