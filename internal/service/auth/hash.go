package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword is a plain unsalted SHA-256 digest. Identical plaintexts
// produce identical hashes, which keeps stored documents compatible with the
// pre-existing ones; the cookie-variant account store is the bcrypt path.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
