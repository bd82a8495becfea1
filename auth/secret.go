package auth

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

type (
	// SecretFn yields the shared signing secret. It is called on every
	// sign/verify so that rotating the environment variable takes
	// effect without a restart.
	SecretFn func() []byte
)

const (
	// SecretEnvVar is the default environment variable holding the
	// signing secret.
	SecretEnvVar = "PADDOCK_JWT_SECRET"

	// fallbackSecret is used when the environment variable is unset.
	// This is a known hazard kept for compatibility with existing
	// deployments: anyone who reads this source can mint tokens for a
	// server still running on the fallback. Set the variable.
	fallbackSecret = "insecure-dev-secret-change-me"
)

// SecretFromEnv builds a SecretFn reading varname from the environment,
// falling back to the built-in default when unset. The fallback is
// logged loudly, once.
func SecretFromEnv(varname string) SecretFn {
	if varname == "" {
		varname = SecretEnvVar
	}
	var warnOnce sync.Once
	return func() []byte {
		val := os.Getenv(varname)
		if val == "" {
			warnOnce.Do(func() {
				log.Warn().Str("envvar", varname).Msg("Signing secret not set, using the built-in default. Anyone with the source can forge sessions, do not run like this in production")
			})
			return []byte(fallbackSecret)
		}
		return []byte(val)
	}
}

// StaticSecret wraps a fixed secret, mostly useful in tests.
func StaticSecret(secret string) SecretFn {
	return func() []byte { return []byte(secret) }
}
