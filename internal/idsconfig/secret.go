package idsconfig

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashSecret derives the stored form of a client or API resource secret:
// base64 over a single sha256 round, matching what the token engine computes
// when a client authenticates. The model never carries the plaintext beyond
// this call.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
