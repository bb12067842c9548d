// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the input of one login attempt. It is owned by the caller
// for the duration of the attempt only; the login service wipes Password
// before returning, on every outcome.
type Credentials struct {
	Username string
	Password string
}

// WipePassword discards the password held by the attempt.
func (c *Credentials) WipePassword() {
	if c == nil {
		return
	}
	c.Password = ""
}

// ExchangeKey is the key material fetched for one login attempt. It is never
// persisted and lives only until the attempt resolves.
type ExchangeKey struct {
	// CacheKey correlates the attempt with the key the service generated.
	CacheKey string
	// PublicKey is the service public key for CacheKey.
	PublicKey string
}
