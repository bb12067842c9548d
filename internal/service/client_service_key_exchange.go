package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-gate/internal/adapter"
	"github.com/MKhiriev/go-chat-gate/internal/crypto"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
	"github.com/MKhiriev/go-chat-gate/models"
)

type clientKeyExchangeService struct {
	adapter   adapter.AuthAdapter
	encryptor crypto.Encryptor
	newID     func() string
}

func NewClientKeyExchangeService(authAdapter adapter.AuthAdapter, encryptor crypto.Encryptor) ClientKeyExchangeService {
	return &clientKeyExchangeService{
		adapter:   authAdapter,
		encryptor: encryptor,
		newID:     utils.NewUUIDGenerator().Generate,
	}
}

func (k *clientKeyExchangeService) GenerateAttemptID() string {
	return k.newID()
}

func (k *clientKeyExchangeService) FetchPublicKey(ctx context.Context, attemptID string) (models.ExchangeKey, error) {
	resp, err := k.adapter.GetPublicKey(ctx, attemptID)
	if err != nil {
		return models.ExchangeKey{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	publicKey := strings.TrimSpace(resp.Data)
	if publicKey == "" {
		return models.ExchangeKey{}, fmt.Errorf("%w: no public key for attempt", ErrServiceUnavailable)
	}

	return models.ExchangeKey{CacheKey: attemptID, PublicKey: publicKey}, nil
}

func (k *clientKeyExchangeService) EncryptSecret(publicKey, secret string) (string, error) {
	ciphertext, err := k.encryptor.Encrypt(publicKey, crypto.Digest(secret))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}
	if ciphertext == "" {
		return "", fmt.Errorf("%w: empty ciphertext", ErrEncryption)
	}

	return ciphertext, nil
}
