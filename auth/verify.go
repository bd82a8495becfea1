package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Verify checks a submitted password against a stored hash, dispatching
// on the hash format (see Classify). It returns nil on a match,
// ErrMismatch on a clean non-match and a ComparisonError when the check
// itself failed.
//
// The legacy path is a plain string comparison of hex digests. That is
// not constant-time and the digest may or may not be salted upstream;
// both quirks are kept as-is because the stored table cannot be changed
// from here.
func Verify(storedHash, password string) error {
	switch Classify(storedHash) {
	case LegacySHA256:
		sum := sha256.Sum256([]byte(password))
		if hex.EncodeToString(sum[:]) != storedHash {
			return ErrMismatch
		}
		return nil
	default:
		err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		if err != nil {
			return ComparisonError{Cause: err}
		}
		return nil
	}
}
