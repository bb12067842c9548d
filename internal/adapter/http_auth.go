// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
	"github.com/MKhiriev/go-chat-gate/models"
)

type httpAuthAdapter struct {
	client   *utils.HTTPClient
	basePath string

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an HTTP/REST implementation of [AuthAdapter].
// It normalises and validates the base URL from adapterCfg.AuthAddress and
// prefixes every endpoint with adapterCfg.AuthBasePath.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed as a valid URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.AuthAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid auth service address: %w", err)
	}

	return &httpAuthAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		basePath: normalizePath(adapterCfg.AuthBasePath),
		logger:   logger,
	}, nil
}

// GetPublicKey implements [AuthAdapter].
func (h *httpAuthAdapter) GetPublicKey(ctx context.Context, cacheKey string) (models.PublicKeyResponse, error) {
	var out models.PublicKeyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("cacheKey", cacheKey).
		Get(h.basePath + "/getPublicKey")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpAuthAdapter.GetPublicKey").Msg("public key request failed")
		return out, fmt.Errorf("%w: public key request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	if err = decodeJSON(resp, &out); err != nil {
		return out, err
	}

	return out, nil
}

// Login implements [AuthAdapter]. The request body carries the ciphertext
// in place of the password.
func (h *httpAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.basePath + "/login")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpAuthAdapter.Login").Msg("login request failed")
		return out, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}

	if resp.IsError() {
		if msg := errorMessage(resp); msg != "" {
			return models.LoginResponse{Message: msg}, nil
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	if err = decodeJSON(resp, &out); err != nil {
		return out, err
	}

	return out, nil
}
