package store

import "errors"

// Sentinel errors returned by [CredentialStore] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when the requested value was never
	// stored or has been removed.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrStorageUnavailable wraps every failure of the underlying backend.
	ErrStorageUnavailable = errors.New("credential storage unavailable")

	// ErrUnknownBackend is returned by [NewClientStorages] for a backend name
	// other than "sqlite" or "bolt".
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level operation errors. These are wrapped together with
// [ErrStorageUnavailable] to tell which step failed.
var (
	// ErrBuildingSQLQuery is returned when a dynamic statement cannot be
	// assembled by the query builder.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBucketNotFound is returned when the bbolt credentials bucket is
	// missing from an opened database file.
	ErrBucketNotFound = errors.New("credentials bucket not found")
)
