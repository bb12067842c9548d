// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the client-side cryptography of the login protocol:
// the password digest and the public-key encryption of that digest.
//
// Schema of one login attempt:
//
//	digest     = Digest(password)                 (Step 1)
//	ciphertext = Encryptor.Encrypt(pubKey, digest) (Step 2)
//
// Only the ciphertext leaves the process. The package knows nothing about
// the network, storage or users.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/encryptor_mock.go -package=mock

// Encryptor encrypts a short secret under a service-provided public key.
// The implementation is chosen once at process start.
type Encryptor interface {
	// Encrypt encrypts plaintext under publicKey and returns the base64
	// encoded ciphertext. publicKey is the textual key as delivered by the
	// authentication service.
	Encrypt(publicKey string, plaintext []byte) (string, error)
}
