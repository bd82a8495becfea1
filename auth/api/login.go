package api

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pitwall/paddock/auth"
	"github.com/pitwall/paddock/internal/logutil"
)

type (
	// Login verifies a submitted username/password pair and, on
	// success, hands the client a session cookie plus a redirect to
	// its own page.
	Login struct {
		creds  auth.Credentials
		secret auth.SecretFn
	}
)

const (
	loginPage = "/login"

	formContentType = "application/x-www-form-urlencoded"
)

func NewLogin(creds auth.Credentials, secret auth.SecretFn) *Login {
	return &Login{creds: creds, secret: secret}
}

func (l *Login) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logutil.GetOrDefault(r.Context())
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !strings.Contains(r.Header.Get("Content-Type"), formContentType) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	body, _ := io.ReadAll(r.Body)
	// a half-parseable body behaves like one with missing fields, it
	// just fails the lookup below
	form, _ := url.ParseQuery(string(body))
	username := auth.NormalizeUsername(form.Get("username"))
	password := strings.TrimSpace(form.Get("password"))

	hash, ok := l.creds.Lookup(username)
	if !ok {
		log.Debug().Str("user", username).Msg("Login attempt for unknown user")
		http.Redirect(w, r, loginPage+"?error=nohash", http.StatusFound)
		return
	}
	switch err := auth.Verify(hash, password); {
	case errors.Is(err, auth.ErrMismatch):
		log.Debug().Str("user", username).Msg("Login attempt with wrong password")
		http.Redirect(w, r, loginPage+"?error=1", http.StatusFound)
		return
	case err != nil:
		log.Error().Err(err).Str("user", username).Msg("Credential comparison failed")
		http.Redirect(w, r, loginPage+"?error=compare", http.StatusFound)
		return
	}

	token, err := auth.IssueToken(username, l.secret(), auth.TokenLifetime)
	if err != nil {
		log.Error().Err(err).Str("user", username).Msg("Unable to sign session token")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, auth.SessionCookie(token, auth.TokenLifetime))
	log.Info().Str("user", username).Msg("Session issued")
	http.Redirect(w, r, PagePath(username), http.StatusFound)
}
