package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
	"github.com/MKhiriev/go-chat-gate/models"
)

// maxProbeBody caps the part of a probe response kept for display.
const maxProbeBody = 512

type httpGatewayAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPGatewayAdapter constructs an HTTP/REST implementation of
// [GatewayAdapter] pointed at adapterCfg.GatewayAddress.
func NewHTTPGatewayAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (GatewayAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.GatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	return &httpGatewayAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// Probe implements [GatewayAdapter].
func (h *httpGatewayAdapter) Probe(ctx context.Context, token, path string) (models.ProbeResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(normalizePath(path))
	if err != nil {
		h.logger.Err(err).Str("func", "*httpGatewayAdapter.Probe").Msg("probe request failed")
		return models.ProbeResult{}, fmt.Errorf("%w: probe request: %w", ErrTransport, err)
	}

	body := resp.Body()
	if len(body) > maxProbeBody {
		body = body[:maxProbeBody]
	}
	result := models.ProbeResult{StatusCode: resp.StatusCode(), Body: string(body)}

	return result, mapHTTPError(resp)
}
