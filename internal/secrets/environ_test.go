package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyWithoutBaseOverwrites(t *testing.T) {
	t.Setenv("EXISTING_VAR", "old")

	err := Apply(map[string]string{"EXISTING_VAR": "new", "FRESH_VAR": "1"}, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := os.Getenv("EXISTING_VAR"); got != "new" {
		t.Errorf("EXISTING_VAR = %q, want %q (secrets overwrite)", got, "new")
	}
	if got := os.Getenv("FRESH_VAR"); got != "1" {
		t.Errorf("FRESH_VAR = %q, want %q", got, "1")
	}
}

func TestApplyLayeringSecretsWin(t *testing.T) {
	// Scrub so t.Setenv restores afterwards.
	t.Setenv("LAYER_A", "")
	t.Setenv("LAYER_B", "")
	os.Unsetenv("LAYER_A")
	os.Unsetenv("LAYER_B")

	base := func() error {
		os.Setenv("LAYER_A", "1")
		os.Setenv("LAYER_B", "2")
		return nil
	}

	if err := Apply(map[string]string{"LAYER_B": "9"}, base); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := os.Getenv("LAYER_A"); got != "1" {
		t.Errorf("LAYER_A = %q, want %q (baseline preserved)", got, "1")
	}
	if got := os.Getenv("LAYER_B"); got != "9" {
		t.Errorf("LAYER_B = %q, want %q (secret wins collision)", got, "9")
	}
}

func TestApplyBaseLoaderFailureStopsApply(t *testing.T) {
	t.Setenv("SHOULD_NOT_SET", "")
	os.Unsetenv("SHOULD_NOT_SET")

	base := func() error {
		return os.ErrNotExist
	}

	if err := Apply(map[string]string{"SHOULD_NOT_SET": "x"}, base); err == nil {
		t.Fatal("Expected error from failing base loader")
	}
	if _, ok := os.LookupEnv("SHOULD_NOT_SET"); ok {
		t.Error("Secrets were applied despite base loader failure")
	}
}

func TestDotenvLoader(t *testing.T) {
	t.Setenv("DOTENV_ONLY", "")
	t.Setenv("DOTENV_SHADOWED", "")
	os.Unsetenv("DOTENV_ONLY")
	os.Unsetenv("DOTENV_SHADOWED")

	envPath := filepath.Join(t.TempDir(), ".env")
	content := "DOTENV_ONLY=base\nDOTENV_SHADOWED=base\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	secretsSet := map[string]string{"DOTENV_SHADOWED": "secret"}
	if err := Apply(secretsSet, DotenvLoader(envPath)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := os.Getenv("DOTENV_ONLY"); got != "base" {
		t.Errorf("DOTENV_ONLY = %q, want %q", got, "base")
	}
	if got := os.Getenv("DOTENV_SHADOWED"); got != "secret" {
		t.Errorf("DOTENV_SHADOWED = %q, want %q", got, "secret")
	}
}
