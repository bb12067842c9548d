package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults applied before any other source.
const (
	DefaultGatewayAddress  = ":3333"
	DefaultUpstreamURL     = "https://api.openai.com"
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 15 * time.Second
	DefaultAuthBasePath    = "admin/user"
	DefaultStorageBackend  = "sqlite"
	DefaultDSN             = "go-chat-gate.db"
	DefaultProbePath       = "/v1/models"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			ProbePath: DefaultProbePath,
		},
		Adapter: Adapter{
			AuthBasePath:   DefaultAuthBasePath,
			GatewayAddress: "http://localhost" + DefaultGatewayAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Backend: DefaultStorageBackend,
			DB:      DB{DSN: DefaultDSN},
		},
		Gateway: Gateway{
			Address:         DefaultGatewayAddress,
			UpstreamURL:     DefaultUpstreamURL,
			UpstreamTimeout: DefaultUpstreamTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
