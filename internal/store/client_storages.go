package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
)

// Storage backend names accepted in config.ClientStorage.Backend.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Credentials persists the session token, hashed identity and profile.
	Credentials CredentialStore
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the backend selected by cfg.Backend at cfg.DB.DSN, creating the
//     file if it does not yet exist.
//  2. For SQLite, runs pending schema migrations via [DB.Migrate].
//  3. Wraps the backend into a [CredentialStore] hashing identities with hasher.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, hasher *utils.Hasher, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var kv keyValue
	switch cfg.Backend {
	case BackendSQLite, "":
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = newSQLiteKeyValue(db)
	case BackendBolt:
		db, err := NewConnectBolt(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("boltdb connection error: %w", err)
		}
		kv = newBoltKeyValue(db)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	return &ClientStorages{
		Credentials: newCredentialStore(kv, hasher, logger),
	}, nil
}
