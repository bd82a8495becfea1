package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type (
	// Claims is the full payload of a session token: the standard
	// registered claims plus the username the session belongs to.
	Claims struct {
		jwt.RegisteredClaims
		User string `json:"user"`
	}
)

const (
	// TokenLifetime bounds every session. There is no refresh and no
	// revocation, tokens simply age out.
	TokenLifetime = 8 * time.Hour
)

var (
	errInvalidToken = errors.New("session token failed validation")
)

// IssueToken signs a fresh session token for user, valid for the given
// lifetime, using HS256 with the shared secret.
func IssueToken(user string, secret []byte, lifetime time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		User: user,
	})
	return token.SignedString(secret)
}

// VerifyToken checks signature and expiry and returns the embedded
// claims. Any failure mode (bad signature, expired, malformed) comes
// back as an error; callers are expected to treat them all the same.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}
