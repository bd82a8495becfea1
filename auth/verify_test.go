package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func legacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func TestVerifyLegacy(t *testing.T) {
	stored := legacyHash("opensesame")
	if err := Verify(stored, "opensesame"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := Verify(stored, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestVerifyLegacyIsExactStringMatch(t *testing.T) {
	// an upper-cased stored digest still classifies as legacy but can
	// never match the lower-case hex this code computes
	stored := strings.ToUpper(legacyHash("opensesame"))
	if err := Verify(stored, "opensesame"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch for case-mangled digest, got %v", err)
	}
}

func TestVerifyBcrypt(t *testing.T) {
	stored, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(string(stored), "hunter2"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := Verify(string(stored), "hunter3"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestVerifyMalformedHashIsComparisonError(t *testing.T) {
	err := Verify("definitely-not-a-bcrypt-hash", "whatever")
	var cmpErr ComparisonError
	if !errors.As(err, &cmpErr) {
		t.Fatalf("expected ComparisonError, got %v", err)
	}
	if errors.Is(err, ErrMismatch) {
		t.Fatal("a broken comparison must not look like a clean mismatch")
	}
}
