package secrets

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// BaseLoader populates the process environment with a non-sensitive
// baseline before secrets are applied. The conventional implementation is
// DotenvLoader; tests substitute their own.
type BaseLoader func() error

// Apply writes every secret into the process environment. When base is
// non-nil it runs first, so on key collision the secret value always wins:
// secrets are the authoritative override, never the fallback.
//
// Apply is one-way. It never reads the environment back to reconcile and
// persists nothing.
func Apply(values map[string]string, base BaseLoader) error {
	if base != nil {
		if err := base(); err != nil {
			return fmt.Errorf("failed to load base environment: %w", err)
		}
	}

	for key, value := range values {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// DotenvLoader adapts godotenv as the external dotenv collaborator: it
// loads the given files (the project's .env by default) into the process
// environment without overriding variables that are already set.
func DotenvLoader(paths ...string) BaseLoader {
	return func() error {
		return godotenv.Load(paths...)
	}
}
