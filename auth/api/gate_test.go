package api

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pitwall/paddock/auth"
	"github.com/steinfletcher/apitest"
)

func protectedHandler(count *uint32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint32(count, 1)
		w.WriteHeader(http.StatusOK)
	})
}

func issueTestToken(t *testing.T, user string, lifetime time.Duration) string {
	t.Helper()
	tok, err := auth.IssueToken(user, []byte("test-secret"), lifetime)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func newProtected(count *uint32) http.Handler {
	gate := NewGate(auth.StaticSecret("test-secret"))
	return gate.Protect(protectedHandler(count))
}

func TestGatePassesThroughOutsidePrefix(t *testing.T) {
	var count uint32
	apitest.New().
		Handler(newProtected(&count)).
		Get("/index.html").
		Expect(t).
		Status(http.StatusOK).
		End()
	if count != 1 {
		t.Fatal("paths outside the protected prefix must pass through untouched")
	}
}

func TestGateMalformedPathIs404(t *testing.T) {
	var count uint32
	handler := newProtected(&count)
	for _, p := range []string{
		"/drivers/../etc.html",
		"/drivers/Alice!.html",
		"/drivers/alice.txt",
		"/drivers/",
		"/drivers/nested/alice.html",
	} {
		apitest.New().
			Handler(handler).
			Get(p).
			Expect(t).
			Status(http.StatusNotFound).
			End()
	}
	if count != 0 {
		t.Fatal("malformed paths must never reach the protected handler")
	}
}

func TestGateMissingCookieRedirectsToLogin(t *testing.T) {
	var count uint32
	apitest.New().
		Handler(newProtected(&count)).
		Get("/drivers/carol.html").
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/login").
		End()
	if count != 0 {
		t.Fatal("request without a session must not reach the protected handler")
	}
}

func TestGateGarbageTokenRedirectsToLogin(t *testing.T) {
	var count uint32
	apitest.New().
		Handler(newProtected(&count)).
		Get("/drivers/carol.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value("complete-garbage")).
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/login").
		End()
	if count != 0 {
		t.Fatal("garbage session must not reach the protected handler")
	}
}

func TestGateExpiredTokenRedirectsToLogin(t *testing.T) {
	// expired is a redirect like any other broken session, never a 401
	var count uint32
	tok := issueTestToken(t, "carol", -time.Minute)
	apitest.New().
		Handler(newProtected(&count)).
		Get("/drivers/carol.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value(tok)).
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/login").
		End()
}

func TestGateWrongUserIs401(t *testing.T) {
	var count uint32
	tok := issueTestToken(t, "alice", time.Hour)
	apitest.New().
		Handler(newProtected(&count)).
		Get("/drivers/bob.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value(tok)).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	if count != 0 {
		t.Fatal("a session for alice must not open bob's page")
	}
}

func TestGateMatchingUserPassesThrough(t *testing.T) {
	var count uint32
	tok := issueTestToken(t, "alice", time.Hour)
	handler := newProtected(&count)
	apitest.New().
		Handler(handler).
		Get("/drivers/alice.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value(tok)).
		Expect(t).
		Status(http.StatusOK).
		End()
	// the path match is case-insensitive, ownership still holds
	apitest.New().
		Handler(handler).
		Get("/drivers/Alice.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value(tok)).
		Expect(t).
		Status(http.StatusOK).
		End()
	if count != 2 {
		t.Fatalf("protected handler called %v times, want 2", count)
	}
}

func TestGateRoundTripWithLogin(t *testing.T) {
	// the cookie minted by the login handler opens exactly one page
	login := NewLogin(testCredentials(t), auth.StaticSecret("test-secret"))
	result := apitest.New().
		Handler(login).
		Post("/login").
		FormData("username", "carol").
		FormData("password", "hunter2").
		Expect(t).
		Status(http.StatusFound).
		End()
	cookies := result.Response.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected exactly one cookie, got %v", len(cookies))
	}
	tok := cookies[0].Value

	var count uint32
	handler := newProtected(&count)
	apitest.New().
		Handler(handler).
		Get("/drivers/carol.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value(tok)).
		Expect(t).
		Status(http.StatusOK).
		End()
	apitest.New().
		Handler(handler).
		Get("/drivers/bob.html").
		Cookies(apitest.NewCookie(auth.CookieName).Value(tok)).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	if count != 1 {
		t.Fatalf("protected handler called %v times, want 1", count)
	}
}
