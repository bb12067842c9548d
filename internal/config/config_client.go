package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// IdentityHashKey keys the one-way hash of the stored username.
	IdentityHashKey string
	// ProbePath is the upstream path called from the protected home screen.
	ProbePath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// AuthAddress is the authentication service base URL.
	AuthAddress string
	// AuthBasePath is the path prefix of the key and login endpoints.
	AuthBasePath string
	// GatewayAddress is the forwarding gateway base URL.
	GatewayAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database file settings for the client.
type ClientDB struct {
	// DSN is the SQLite DSN or bbolt file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend is "sqlite" or "bolt".
	Backend string
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			IdentityHashKey: cfg.App.IdentityHashKey,
			ProbePath:       cfg.App.ProbePath,
		},
		Adapter: ClientAdapter{
			AuthAddress:    cfg.Adapter.AuthAddress,
			AuthBasePath:   cfg.Adapter.AuthBasePath,
			GatewayAddress: cfg.Adapter.GatewayAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}
}
