// Package auth holds the credential checks and session tokens that sit
// in front of the per-driver pages.
//
// There is deliberately no session storage anywhere: a login produces a
// signed token with the username and an expiry inside it, the token
// travels as a cookie, and every later request proves itself by having a
// token that still verifies. Lose the cookie, log in again. Restart the
// server, nothing is lost because nothing was kept.
//
// The credential table is the one ugly corner. It predates this code and
// contains two generations of hashes: old entries are bare hex-encoded
// SHA-256 digests (64 hex characters, no version tag, possibly unsalted,
// nobody is sure anymore), new entries are bcrypt. The only way to tell
// them apart is by shape, so Classify looks at the shape. Do not try to
// make this cleverer, compatibility with the existing table is the whole
// point. New entries should always be bcrypt.
package auth
