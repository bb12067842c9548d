// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	upsertCredential = `
		INSERT INTO credentials (
			key,
			value,
			updated_at
		) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	getCredential = `
		SELECT value
		FROM credentials
		WHERE key = ?;`

	credentialsTable = "credentials"
)

// buildDeleteCredentials builds one DELETE removing every key in keys.
func buildDeleteCredentials(keys ...string) (string, []any, error) {
	query, args, err := sq.Delete(credentialsTable).
		Where(sq.Eq{"key": keys}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
