// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-chat-gate/internal/adapter"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/store"
	"github.com/MKhiriev/go-chat-gate/internal/validators"
	"github.com/MKhiriev/go-chat-gate/models"
)

type clientLoginService struct {
	state atomic.Int32

	validator validators.Validator
	keys      ClientKeyExchangeService
	adapter   adapter.AuthAdapter
	store     store.CredentialStore

	logger *logger.Logger
}

func NewClientLoginService(
	validator validators.Validator,
	keys ClientKeyExchangeService,
	authAdapter adapter.AuthAdapter,
	credentialStore store.CredentialStore,
	logger *logger.Logger,
) ClientLoginService {
	return &clientLoginService{
		validator: validator,
		keys:      keys,
		adapter:   authAdapter,
		store:     credentialStore,
		logger:    logger,
	}
}

func (s *clientLoginService) State() models.LoginState {
	return models.LoginState(s.state.Load())
}

func (s *clientLoginService) Submit(ctx context.Context, creds *models.Credentials) (models.LoginResult, error) {
	if creds == nil {
		creds = &models.Credentials{}
	}
	defer creds.WipePassword()

	// validation is local, nothing is sent on failure
	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.LoginResult{State: models.LoginIdle}, err
	}

	// one attempt at a time
	if !s.state.CompareAndSwap(int32(models.LoginIdle), int32(models.LoginSubmitting)) {
		return models.LoginResult{State: models.LoginIdle}, ErrLoginInProgress
	}

	token, err := s.attempt(ctx, creds)

	final := models.LoginSuccess
	if err != nil {
		final = models.LoginFailed
	}
	s.state.Store(int32(final))
	s.logAttempt(final, err)

	// the terminal state is reported through the result
	s.state.Store(int32(models.LoginIdle))

	return models.LoginResult{State: final, Token: token, Done: true}, err
}

func (s *clientLoginService) attempt(ctx context.Context, creds *models.Credentials) (string, error) {
	// invalidate the previous session
	if err := s.store.ClearAll(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	key, err := s.keys.FetchPublicKey(ctx, s.keys.GenerateAttemptID())
	if err != nil {
		return "", err
	}

	// only the encrypted digest leaves the process
	ciphertext, err := s.keys.EncryptSecret(key.PublicKey, creds.Password)
	if err != nil {
		return "", err
	}

	resp, err := s.adapter.Login(ctx, models.LoginRequest{
		Username: creds.Username,
		Password: ciphertext,
		CacheKey: key.CacheKey,
	})
	if err != nil {
		return "", mapLoginAdapterError(err)
	}
	if resp.Rejected() {
		return "", &AuthRejectedError{Message: strings.TrimSpace(resp.Message)}
	}
	if resp.Data == nil || strings.TrimSpace(resp.Data.Token) == "" {
		return "", &AuthRejectedError{}
	}
	token := strings.TrimSpace(resp.Data.Token)

	// token and identity together, then the optional profile
	if err = s.store.SaveSession(ctx, token, creds.Username); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if profile := resp.Data.Profile(); profile != "" {
		if err = s.store.SetProfile(ctx, profile); err != nil {
			s.rollbackSession(ctx)
			return "", fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}

	return token, nil
}

func (s *clientLoginService) Logout(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	s.logger.Info().Msg("session cleared")
	return nil
}

// rollbackSession removes a half-written session so the gate never sees a
// token of a failed attempt.
func (s *clientLoginService) rollbackSession(ctx context.Context) {
	if err := s.store.ClearAll(ctx); err != nil {
		s.logger.Err(err).Str("func", "*clientLoginService.rollbackSession").Msg("failed to clear partial session")
	}
}

func (s *clientLoginService) logAttempt(state models.LoginState, err error) {
	event := s.logger.Info()
	if err != nil {
		event = s.logger.Warn().Err(err)
		var rejected *AuthRejectedError
		if errors.As(err, &rejected) {
			event = event.Bool("rejected", true)
		}
	}
	event.Stringer("state", state).Msg("login attempt finished")
}
