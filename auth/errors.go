package auth

import (
	"errors"
	"fmt"
)

type (
	// ComparisonError reports that a credential check blew up instead of
	// returning a clean match/mismatch, usually because the stored hash
	// is malformed. Callers must treat it as a failed login, never as a
	// server error.
	ComparisonError struct {
		Cause error
	}
)

var (
	// ErrMismatch is the clean "wrong password" result.
	ErrMismatch = errors.New("password does not match stored credential")
)

func (c ComparisonError) Error() string {
	return fmt.Sprintf("unable to compare password against stored credential, cause %v", c.Cause)
}

func (c ComparisonError) Unwrap() error { return c.Cause }
