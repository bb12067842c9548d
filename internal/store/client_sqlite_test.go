package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
)

func newMockedSQLiteStore(t *testing.T) (CredentialStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	kv := newSQLiteKeyValue(&DB{DB: db, logger: l})
	return newCredentialStore(kv, utils.NewHasher(testHashKey), l), mock
}

func TestSQLiteStore_GetToken_NoRows(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectQuery("SELECT value").
		WithArgs(keyToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrCredentialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetToken_QueryError(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectQuery("SELECT value").
		WithArgs(keyToken).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SaveSession_Atomic(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(keyToken, "tok", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(keyIdentity, utils.HashString("bob", testHashKey), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SaveSession(context.Background(), "tok", "bob"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SaveSession_RollsBackOnSecondWrite(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(keyToken, "tok", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(keyIdentity, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := s.SaveSession(context.Background(), "tok", "bob")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_BeginError(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := s.SetToken(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_ClearAll(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credentials WHERE key IN (?,?,?)")).
		WithArgs(keyToken, keyIdentity, keyProfile).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, s.ClearAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_ClearAll_CommitError(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM credentials").
		WithArgs(keyToken, keyIdentity, keyProfile).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := s.ClearAll(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildDeleteCredentials(t *testing.T) {
	query, args, err := buildDeleteCredentials(keyToken)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM credentials WHERE key IN (?)", query)
	assert.Equal(t, []any{keyToken}, args)

	query, args, err = buildDeleteCredentials(keyToken, keyIdentity)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM credentials WHERE key IN (?,?)", query)
	assert.Equal(t, []any{keyToken, keyIdentity}, args)
}

func TestSQLiteStore_RemoveToken_SingleKey(t *testing.T) {
	s, mock := newMockedSQLiteStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credentials WHERE key IN (?)")).
		WithArgs(keyToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.RemoveToken(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
