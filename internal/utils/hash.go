package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded. The result is deterministic for the same pair, so
// it is used for one-way identity records that must stay stable across
// logins.
//
// Example usage:
//
//	identity := utils.HashString("alice", "identity-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Hasher binds a key to [HashString].
type Hasher struct {
	hashKey string
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	return &Hasher{hashKey: hashKey}
}

// Hash returns the keyed hex digest of data.
func (h *Hasher) Hash(data string) string {
	return HashString(data, h.hashKey)
}
