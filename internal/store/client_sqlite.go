package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sqliteKeyValue keeps credentials as rows of the "credentials" table.
type sqliteKeyValue struct {
	db *DB
}

func newSQLiteKeyValue(db *DB) keyValue {
	return &sqliteKeyValue{db: db}
}

func (s *sqliteKeyValue) get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, getCredential, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValue) put(ctx context.Context, entries ...entry) error {
	now := time.Now().UTC()

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, e := range entries {
			if _, err := tx.ExecContext(ctx, upsertCredential, e.key, e.value, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqliteKeyValue) remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteCredentials(keys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (s *sqliteKeyValue) close() error {
	return s.db.Close()
}

// inTx runs fn in a transaction and commits only if fn succeeds.
func (s *sqliteKeyValue) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.db.logger.Err(rbErr).Str("func", "*sqliteKeyValue.inTx").Msg("rollback failed")
		}
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrCommitingTransaction, err)
	}

	return nil
}
