package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/adapter"
	"github.com/MKhiriev/go-chat-gate/internal/store"
	"github.com/MKhiriev/go-chat-gate/models"
)

type clientAPIService struct {
	store     store.CredentialStore
	adapter   adapter.GatewayAdapter
	probePath string
}

func NewClientAPIService(credentialStore store.CredentialStore, gatewayAdapter adapter.GatewayAdapter, probePath string) ClientAPIService {
	return &clientAPIService{store: credentialStore, adapter: gatewayAdapter, probePath: probePath}
}

// Probe returns the adapter result together with its error so a non-2xx
// status can still be displayed.
func (a *clientAPIService) Probe(ctx context.Context) (models.ProbeResult, error) {
	token, err := a.store.GetToken(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) || (err == nil && token == "") {
		return models.ProbeResult{}, ErrNotAuthorized
	}
	if err != nil {
		return models.ProbeResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return a.adapter.Probe(ctx, token, a.probePath)
}
