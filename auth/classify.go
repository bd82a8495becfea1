package auth

import "regexp"

type (
	// HashKind identifies which generation of the credential table a
	// stored hash belongs to.
	HashKind int
)

const (
	// LegacySHA256 marks a bare hex-encoded SHA-256 digest.
	LegacySHA256 = HashKind(iota)
	// Bcrypt marks anything that is not a legacy digest.
	Bcrypt
)

var (
	legacyHexRE = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

// Classify decides the hash format by shape alone: exactly 64 hex
// characters means legacy SHA-256, anything else is treated as bcrypt.
// The table carries no version tag, so shape is all there is.
func Classify(hash string) HashKind {
	if legacyHexRE.MatchString(hash) {
		return LegacySHA256
	}
	return Bcrypt
}
