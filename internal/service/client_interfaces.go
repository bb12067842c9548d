package service

import (
	"context"

	"github.com/MKhiriev/go-chat-gate/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientKeyExchangeService obtains one-time key material from the
// authentication service and encrypts the password for transmission.
type ClientKeyExchangeService interface {
	// GenerateAttemptID returns a fresh correlation id for one login attempt.
	GenerateAttemptID() string

	// FetchPublicKey requests the public key generated for attemptID.
	// No key, or no answer at all, is reported as [ErrServiceUnavailable].
	FetchPublicKey(ctx context.Context, attemptID string) (models.ExchangeKey, error)

	// EncryptSecret digests secret and encrypts the digest under publicKey,
	// returning base64 ciphertext. Failures are reported as [ErrEncryption].
	EncryptSecret(publicKey, secret string) (string, error)
}

// ClientLoginService runs the login protocol:
// Idle → Submitting → {Success, Failed} → Idle.
type ClientLoginService interface {
	// Submit validates creds, clears the previous session, exchanges keys,
	// logs in and persists the new session. The password in creds is wiped
	// before Submit returns, whatever the outcome. A submit while another
	// one is running returns [ErrLoginInProgress] without side effects.
	Submit(ctx context.Context, creds *models.Credentials) (models.LoginResult, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error

	// State returns the current state of the protocol.
	State() models.LoginState
}

// AccessGate decides whether protected content may be shown. It reads the
// stored token only; token validity is enforced by whoever receives it, so
// the gate is a presentation-layer check and not a security boundary.
type AccessGate interface {
	// Init performs the first evaluation.
	Init(ctx context.Context) error

	// Authorized reports the result of the last evaluation.
	Authorized() bool

	// Refresh re-reads the store synchronously and returns the new result.
	// Storage failures are returned as errors, never as "not authorized".
	Refresh(ctx context.Context) (bool, error)

	// Identity returns the stored identity hash, for display only.
	Identity() string
}

// ClientAPIService issues authenticated application calls through the
// forwarding gateway.
type ClientAPIService interface {
	// Probe sends the configured probe request with the stored token.
	Probe(ctx context.Context) (models.ProbeResult, error)
}
