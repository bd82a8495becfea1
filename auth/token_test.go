package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("super-secret")
	tok, err := IssueToken("alice", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.User != "alice" {
		t.Fatalf("user mismatch: got %q want %q", claims.User, "alice")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		t.Fatal("expiry missing or in the past on a fresh token")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	secret := []byte("super-secret")
	tok, err := IssueToken("alice", secret, -time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if _, err := VerifyToken(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tok, err := IssueToken("alice", []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if _, err := VerifyToken(tok, []byte("wrong")); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	if _, err := VerifyToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
