package auth

import (
	"net/http"
	"strings"
	"time"
)

const (
	// CookieName is the fixed name of the session cookie.
	CookieName = "driver_auth"
)

// SessionCookie wraps a signed token in the session cookie: HTTP-only,
// secure-transport-only, Lax same-site, scoped to the whole site, and
// aging out together with the token it carries.
func SessionCookie(token string, lifetime time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(lifetime / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ParseCookieHeader turns a raw Cookie header into a name to value
// mapping: entries split on ';', trimmed, value taken after the first
// '='. Entries without a '=' are dropped, the first occurrence of a
// name wins. Kept as a pure function so the parsing rules can be tested
// without an HTTP request in sight.
func ParseCookieHeader(raw string) map[string]string {
	cookies := make(map[string]string)
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		name, value, found := strings.Cut(entry, "=")
		if !found || name == "" {
			continue
		}
		if _, seen := cookies[name]; seen {
			continue
		}
		cookies[name] = value
	}
	return cookies
}
