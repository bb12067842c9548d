// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Backend {
	case "sqlite", "bolt":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.AuthAddress == "" || cfg.Adapter.GatewayAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.IdentityHashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if cfg.Address == "" {
		return ErrInvalidGatewayConfigs
	}

	u, err := url.Parse(cfg.UpstreamURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.UpstreamTimeout <= 0 {
		return ErrInvalidGatewayConfigs
	}

	return nil
}
