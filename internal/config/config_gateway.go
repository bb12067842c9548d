package config

import (
	"fmt"
	"time"
)

// GatewayConfig is the forwarding gateway view of [StructuredConfig].
type GatewayConfig struct {
	// Address is the listen address.
	Address string
	// UpstreamURL is the fixed upstream origin.
	UpstreamURL string
	// UpstreamTimeout bounds each forwarded call.
	UpstreamTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// GetGatewayConfig builds and validates the gateway view of the merged
// structured configuration.
func GetGatewayConfig(args []string) (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	gatewayCfg := newGatewayConfig(cfg)
	return gatewayCfg, gatewayCfg.validate()
}

func newGatewayConfig(cfg *StructuredConfig) *GatewayConfig {
	return &GatewayConfig{
		Address:         cfg.Gateway.Address,
		UpstreamURL:     cfg.Gateway.UpstreamURL,
		UpstreamTimeout: cfg.Gateway.UpstreamTimeout,
		ShutdownTimeout: cfg.Gateway.ShutdownTimeout,
	}
}
