package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-gate/internal/store"
)

type accessGate struct {
	store store.CredentialStore

	mu         sync.RWMutex
	authorized bool
	identity   string
}

// NewAccessGate returns an unevaluated gate. Call Init before reading it.
func NewAccessGate(credentialStore store.CredentialStore) AccessGate {
	return &accessGate{store: credentialStore}
}

func (g *accessGate) Init(ctx context.Context) error {
	_, err := g.Refresh(ctx)
	return err
}

func (g *accessGate) Authorized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authorized
}

func (g *accessGate) Identity() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.identity
}

// Refresh leaves the previous evaluation untouched when the store fails.
func (g *accessGate) Refresh(ctx context.Context) (bool, error) {
	token, err := g.store.GetToken(ctx)
	if err != nil && !errors.Is(err, store.ErrCredentialNotFound) {
		return g.Authorized(), fmt.Errorf("%w: %w", ErrStorage, err)
	}
	authorized := strings.TrimSpace(token) != ""

	identity := ""
	if authorized {
		identity, err = g.store.GetUserIdentity(ctx)
		if err != nil && !errors.Is(err, store.ErrCredentialNotFound) {
			return g.Authorized(), fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}

	g.mu.Lock()
	g.authorized = authorized
	g.identity = identity
	g.mu.Unlock()

	return authorized, nil
}
