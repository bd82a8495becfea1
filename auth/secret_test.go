package auth

import (
	"os"
	"testing"
)

func TestSecretFromEnv(t *testing.T) {
	const varname = "PADDOCK_TEST_SECRET"
	os.Setenv(varname, "from-env")
	defer os.Unsetenv(varname)
	fn := SecretFromEnv(varname)
	if got := string(fn()); got != "from-env" {
		t.Fatalf("got %q want %q", got, "from-env")
	}

	// the secret is read on every call, a rotation must be picked up
	os.Setenv(varname, "rotated")
	if got := string(fn()); got != "rotated" {
		t.Fatalf("got %q want %q", got, "rotated")
	}

	os.Unsetenv(varname)
	if got := string(fn()); got != fallbackSecret {
		t.Fatalf("expected fallback secret when unset, got %q", got)
	}
}
