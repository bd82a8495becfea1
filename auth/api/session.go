package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pitwall/paddock/auth"
)

type (
	// SessionInfo lets the login page ask "who am I right now" without
	// poking at the cookie from script (it can't, the cookie is
	// HTTP-only).
	SessionInfo struct {
		secret auth.SecretFn
	}

	sessionView struct {
		User      string    `json:"user"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	errorView struct {
		Error string `json:"error"`
	}
)

func NewSessionInfo(secret auth.SecretFn) *SessionInfo {
	return &SessionInfo{secret: secret}
}

func (s *SessionInfo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	token := auth.ParseCookieHeader(r.Header.Get("Cookie"))[auth.CookieName]
	if token == "" {
		s.unauthorized(w)
		return
	}
	claims, err := auth.VerifyToken(token, s.secret())
	if err != nil {
		s.unauthorized(w)
		return
	}
	view := sessionView{User: claims.User}
	if claims.ExpiresAt != nil {
		view.ExpiresAt = claims.ExpiresAt.Time
	}
	json.NewEncoder(w).Encode(view)
}

func (s *SessionInfo) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(errorView{Error: "no valid session"})
}
