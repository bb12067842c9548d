package http

import (
	"fmt"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
)

type Handler struct {
	upstream *url.URL
	timeout  time.Duration
	proxy    *httputil.ReverseProxy
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(cfg config.GatewayConfig, logger *logger.Logger) (*Handler, error) {
	upstream, err := parseUpstream(cfg.UpstreamURL)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		upstream: upstream,
		timeout:  cfg.UpstreamTimeout,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	h.proxy = h.newReverseProxy(newUpstreamTransport(cfg.UpstreamTimeout))

	logger.Info().Str("upstream", upstream.String()).Dur("timeout", cfg.UpstreamTimeout).Msg("http handler created")
	return h, nil
}

func parseUpstream(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpstream, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUpstream, raw)
	}
	return u, nil
}
