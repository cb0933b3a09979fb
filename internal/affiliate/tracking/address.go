package tracking

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashAddress returns the lowercase hex SHA-256 digest of a raw client address.
// The raw address must not be stored or logged anywhere; only this digest is.
func HashAddress(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
