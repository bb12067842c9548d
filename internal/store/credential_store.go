package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
)

// Fixed keys of the persisted values.
const (
	keyToken    = "token"
	keyIdentity = "identity"
	keyProfile  = "info"
)

// credentialStore implements [CredentialStore] on top of a keyValue backend.
// Identities are hashed with the configured key before they are written.
type credentialStore struct {
	kv     keyValue
	hasher *utils.Hasher
	logger *logger.Logger
}

func newCredentialStore(kv keyValue, hasher *utils.Hasher, log *logger.Logger) CredentialStore {
	log.Debug().Msg("creating credential store")
	return &credentialStore{
		kv:     kv,
		hasher: hasher,
		logger: log,
	}
}

func (s *credentialStore) SetToken(ctx context.Context, token string) error {
	return s.put(ctx, "*credentialStore.SetToken", entry{key: keyToken, value: token})
}

func (s *credentialStore) GetToken(ctx context.Context) (string, error) {
	return s.get(ctx, "*credentialStore.GetToken", keyToken)
}

func (s *credentialStore) RemoveToken(ctx context.Context) error {
	return s.remove(ctx, "*credentialStore.RemoveToken", keyToken)
}

func (s *credentialStore) SetUserIdentity(ctx context.Context, username string) error {
	return s.put(ctx, "*credentialStore.SetUserIdentity", entry{key: keyIdentity, value: s.hasher.Hash(username)})
}

func (s *credentialStore) GetUserIdentity(ctx context.Context) (string, error) {
	return s.get(ctx, "*credentialStore.GetUserIdentity", keyIdentity)
}

func (s *credentialStore) RemoveUserIdentity(ctx context.Context) error {
	return s.remove(ctx, "*credentialStore.RemoveUserIdentity", keyIdentity)
}

func (s *credentialStore) SetProfile(ctx context.Context, profile string) error {
	return s.put(ctx, "*credentialStore.SetProfile", entry{key: keyProfile, value: profile})
}

func (s *credentialStore) GetProfile(ctx context.Context) (string, error) {
	return s.get(ctx, "*credentialStore.GetProfile", keyProfile)
}

func (s *credentialStore) RemoveProfile(ctx context.Context) error {
	return s.remove(ctx, "*credentialStore.RemoveProfile", keyProfile)
}

func (s *credentialStore) SaveSession(ctx context.Context, token, username string) error {
	return s.put(ctx, "*credentialStore.SaveSession",
		entry{key: keyToken, value: token},
		entry{key: keyIdentity, value: s.hasher.Hash(username)},
	)
}

func (s *credentialStore) ClearAll(ctx context.Context) error {
	return s.remove(ctx, "*credentialStore.ClearAll", keyToken, keyIdentity, keyProfile)
}

func (s *credentialStore) Close() error {
	return s.kv.close()
}

func (s *credentialStore) get(ctx context.Context, fn, key string) (string, error) {
	value, err := s.kv.get(ctx, key)
	if err != nil && !errors.Is(err, ErrCredentialNotFound) {
		s.logger.Err(err).Str("func", fn).Str("key", key).Msg("error reading credential")
	}
	return value, err
}

func (s *credentialStore) put(ctx context.Context, fn string, entries ...entry) error {
	if err := s.kv.put(ctx, entries...); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("error writing credentials")
		return err
	}
	return nil
}

func (s *credentialStore) remove(ctx context.Context, fn string, keys ...string) error {
	if err := s.kv.remove(ctx, keys...); err != nil {
		s.logger.Err(err).Str("func", fn).Strs("keys", keys).Msg("error removing credentials")
		return err
	}
	return nil
}
