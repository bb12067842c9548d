package crypto

import (
	"crypto/md5"
	"encoding/hex"
)

// Digest returns the lowercase hex MD5 digest of secret as bytes.
// The authentication service stores and compares this exact form.
func Digest(secret string) []byte {
	sum := md5.Sum([]byte(secret))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
