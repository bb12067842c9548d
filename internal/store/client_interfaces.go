package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialStore is the client-local persistence of the session.
//
// Getters return [ErrCredentialNotFound] when the value is absent. Any
// backend failure is returned wrapped in [ErrStorageUnavailable] and is
// never reported as "not found".
type CredentialStore interface {
	SetToken(ctx context.Context, token string) error
	GetToken(ctx context.Context) (string, error)
	RemoveToken(ctx context.Context) error

	// SetUserIdentity stores the keyed hash of username, never the username.
	SetUserIdentity(ctx context.Context, username string) error
	GetUserIdentity(ctx context.Context) (string, error)
	RemoveUserIdentity(ctx context.Context) error

	SetProfile(ctx context.Context, profile string) error
	GetProfile(ctx context.Context) (string, error)
	RemoveProfile(ctx context.Context) error

	// SaveSession writes the token and the identity of username in one
	// transaction: either both are persisted or neither is.
	SaveSession(ctx context.Context, token, username string) error

	// ClearAll removes token, identity and profile in one transaction.
	// Clearing an empty store succeeds.
	ClearAll(ctx context.Context) error

	Close() error
}

// keyValue is the storage primitive a CredentialStore is built on.
// put and remove apply all their keys atomically.
type keyValue interface {
	get(ctx context.Context, key string) (string, error)
	put(ctx context.Context, entries ...entry) error
	remove(ctx context.Context, keys ...string) error
	close() error
}

type entry struct {
	key   string
	value string
}
