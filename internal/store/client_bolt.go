// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
)

var bucketCredentials = []byte("credentials")

// boltOpenTimeout bounds the wait for the file lock held by another client.
const boltOpenTimeout = time.Second

// boltKeyValue keeps credentials in a single bbolt bucket.
type boltKeyValue struct {
	db *bbolt.DB
}

// NewConnectBolt opens (creating if needed) the bbolt file at cfg.DSN and
// makes sure the credentials bucket exists.
func NewConnectBolt(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*bbolt.DB, error) {
	if dir := filepath.Dir(cfg.DSN); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectBolt").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := bbolt.Open(cfg.DSN, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewConnectBolt").Msg("error opening boltdb")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCredentials); err != nil {
			return fmt.Errorf("failed to create credentials bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		log.Err(err).Str("func", "NewConnectBolt").Msg("error initializing buckets")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectBolt").Msg("opened boltdb successfully")

	return db, nil
}

func newBoltKeyValue(db *bbolt.DB) keyValue {
	return &boltKeyValue{db: db}
}

func (s *boltKeyValue) get(_ context.Context, key string) (string, error) {
	var (
		value string
		found bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return ErrBucketNotFound
		}

		// bytes are only valid inside the transaction, string() copies
		if data := bucket.Get([]byte(key)); data != nil {
			value, found = string(data), true
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if !found {
		return "", ErrCredentialNotFound
	}

	return value, nil
}

func (s *boltKeyValue) put(_ context.Context, entries ...entry) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return ErrBucketNotFound
		}

		for _, e := range entries {
			if err := bucket.Put([]byte(e.key), []byte(e.value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *boltKeyValue) remove(_ context.Context, keys ...string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return ErrBucketNotFound
		}

		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *boltKeyValue) close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
