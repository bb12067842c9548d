// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"strings"
)

// RSAEncryptor encrypts with RSA PKCS#1 v1.5, the scheme the authentication
// service decrypts with.
type RSAEncryptor struct {
	random io.Reader
}

// NewRSAEncryptor returns an Encryptor backed by crypto/rand.
func NewRSAEncryptor() Encryptor {
	return &RSAEncryptor{random: rand.Reader}
}

// Encrypt parses publicKey and encrypts plaintext with PKCS#1 v1.5 padding.
//
// Accepted key forms:
//   - PEM "PUBLIC KEY" (PKIX)
//   - PEM "RSA PUBLIC KEY" (PKCS#1)
//   - bare base64 of either DER encoding, as JSEncrypt-style services send it
func (e *RSAEncryptor) Encrypt(publicKey string, plaintext []byte) (string, error) {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(e.random, pub, plaintext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// ParsePublicKey decodes an RSA public key from PEM or bare base64 DER.
func ParsePublicKey(publicKey string) (*rsa.PublicKey, error) {
	publicKey = strings.TrimSpace(publicKey)
	if publicKey == "" {
		return nil, ErrEmptyPublicKey
	}

	var der []byte
	if block, _ := pem.Decode([]byte(publicKey)); block != nil {
		der = block.Bytes
	} else {
		decoded, err := base64.StdEncoding.DecodeString(stripWhitespace(publicKey))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPublicKey, err)
		}
		der = decoded
	}

	if key, err := x509.ParsePKIXPublicKey(der); err == nil {
		pub, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, ErrUnsupportedKeyType
		}
		return pub, nil
	}

	pub, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPublicKey, err)
	}
	return pub, nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
}
