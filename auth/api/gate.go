package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/pitwall/paddock/auth"
	"github.com/pitwall/paddock/internal/logutil"
)

type (
	// Gate guards everything under the protected prefix. It never
	// serves content itself, it only decides whether the wrapped
	// handler gets to.
	Gate struct {
		secret auth.SecretFn
	}
)

const (
	// ProtectedPrefix is the path subtree the gate cares about,
	// everything else passes through untouched.
	ProtectedPrefix = "/drivers/"

	pageExt = ".html"
)

var (
	// one page per user: /drivers/<user>.html and nothing else. The
	// match is case-insensitive but the captured name is lower-cased
	// before use.
	pageRE = regexp.MustCompile(`(?i)^/drivers/([a-z0-9_-]+)\.html$`)
)

// PagePath is the page a user owns, and the only one its session opens.
func PagePath(user string) string {
	return fmt.Sprintf("%v%v%v", ProtectedPrefix, user, pageExt)
}

func NewGate(secret auth.SecretFn) *Gate {
	return &Gate{secret: secret}
}

// Protect wraps a handler with the session check. The failure modes are
// deliberately uneven: a malformed path is a plain 404 (looks like any
// missing file), a missing or broken session is a redirect to the login
// page, and only a proven identity asking for somebody else's page gets
// an explicit 401.
func (g *Gate) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, ProtectedPrefix) {
			sensitive.ServeHTTP(w, r)
			return
		}
		log := logutil.GetOrDefault(r.Context())
		groups := pageRE.FindStringSubmatch(r.URL.Path)
		if groups == nil {
			http.NotFound(w, r)
			return
		}
		target := strings.ToLower(groups[1])

		token := auth.ParseCookieHeader(r.Header.Get("Cookie"))[auth.CookieName]
		if token == "" {
			http.Redirect(w, r, loginPage, http.StatusFound)
			return
		}
		claims, err := g.verify(token)
		if err != nil {
			// expired, forged, garbage: all the same redirect, the
			// client learns nothing about how close it got
			log.Debug().Err(err).Msg("Session token rejected")
			http.Redirect(w, r, loginPage, http.StatusFound)
			return
		}
		if strings.ToLower(claims.User) != target {
			log.Debug().Str("user", claims.User).Str("target", target).Msg("Valid session for the wrong page")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

func (g *Gate) verify(token string) (*auth.Claims, error) {
	return auth.VerifyToken(token, g.secret())
}
