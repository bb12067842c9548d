package service

import "errors"

var (
	// ErrServiceUnavailable means the authentication service gave no key for
	// the attempt or could not be reached.
	ErrServiceUnavailable = errors.New("authentication service unavailable")

	// ErrEncryption means the password digest could not be encrypted with
	// the service key. The login endpoint is not contacted.
	ErrEncryption = errors.New("encryption error")

	// ErrAuthRejected means the service answered the login with an error
	// message. The concrete value is an [*AuthRejectedError].
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrStorage means the local credential store failed.
	ErrStorage = errors.New("credential storage error")

	// ErrLoginInProgress is returned to a submit that arrives while another
	// attempt of the same service is still running.
	ErrLoginInProgress = errors.New("login already in progress")

	// ErrNotAuthorized is returned by protected calls when no session token
	// is stored.
	ErrNotAuthorized = errors.New("not authorized")
)

// AuthRejectedError carries the rejection message of the authentication
// service verbatim. It matches [ErrAuthRejected] with errors.Is.
type AuthRejectedError struct {
	Message string
}

func (e *AuthRejectedError) Error() string {
	if e.Message == "" {
		return ErrAuthRejected.Error()
	}
	return e.Message
}

func (e *AuthRejectedError) Unwrap() error {
	return ErrAuthRejected
}
