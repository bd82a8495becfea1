package auth

import "strings"

type (
	// Credentials maps a lowercase username to its stored password hash.
	// The table is provisioned out-of-band and never mutated by the
	// server, which is what makes the whole system stateless.
	Credentials map[string]string
)

// NormalizeUsername applies the same normalization the credential table
// uses: lowercase, surrounding whitespace removed.
func NormalizeUsername(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}

// Lookup returns the stored hash for an already-normalized username.
func (c Credentials) Lookup(user string) (string, bool) {
	hash, ok := c[user]
	return hash, ok
}
