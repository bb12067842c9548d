package crypto

import "errors"

var (
	ErrEmptyPublicKey     = errors.New("public key is empty")
	ErrMalformedPublicKey = errors.New("public key is malformed")
	ErrUnsupportedKeyType = errors.New("public key is not an RSA key")
	ErrEncryptionFailed   = errors.New("encryption failed")
)
