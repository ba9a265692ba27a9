package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex digest of one unsalted SHA-256 pass over the
// password. This is what existing deployments have stored, so it has to stay
// byte-for-byte compatible. See DESIGN.md for the security caveat.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the candidate password hashes to the stored
// digest. Comparison is plain hash equality; there is no per-user salt.
func VerifyPassword(password, storedHash string) bool {
	return HashPassword(password) == storedHash
}
