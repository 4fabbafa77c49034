package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/torvikdev/envstash/internal/configs"
	"github.com/torvikdev/envstash/internal/secrets"
)

func TestInitCommandLinksProject(t *testing.T) {
	projectDir := setupTestEnvironment(t)

	output, err := runCommand(t, "init", "--project", projectDir)
	if err != nil {
		t.Fatalf("init failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "envstash initialized") {
		t.Errorf("Expected success message, got: %s", output)
	}

	// The .env file must now carry the identifier.
	envPath := filepath.Join(projectDir, secrets.EnvFileName)
	id, found, err := lookupIdentifier(t, envPath)
	if err != nil || !found {
		t.Fatalf("Identifier not written to .env (found=%t, err=%v)", found, err)
	}
	if !secrets.IsCanonicalID(id) {
		t.Errorf("Identifier %q is not canonical", id)
	}

	// The namespace with an empty secret file must exist.
	secretPath := filepath.Join(configs.UserEnvstashSettings.DataPath, id, secrets.SecretFileName)
	data, err := os.ReadFile(secretPath)
	if err != nil {
		t.Fatalf("Secret file missing: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Expected empty secret file, got %q", string(data))
	}
}

func TestInitCommandIsIdempotent(t *testing.T) {
	projectDir := setupTestEnvironment(t)

	if _, err := runCommand(t, "init", "--project", projectDir); err != nil {
		t.Fatalf("First init failed: %v", err)
	}
	envPath := filepath.Join(projectDir, secrets.EnvFileName)
	firstID, _, err := lookupIdentifier(t, envPath)
	if err != nil {
		t.Fatalf("Failed to read identifier: %v", err)
	}

	output, err := runCommand(t, "init", "--project", projectDir)
	if err != nil {
		t.Fatalf("Second init failed: %v", err)
	}
	if !strings.Contains(output, "already initialized") {
		t.Errorf("Expected already-initialized message, got: %s", output)
	}

	secondID, _, err := lookupIdentifier(t, envPath)
	if err != nil {
		t.Fatalf("Failed to read identifier: %v", err)
	}
	if firstID != secondID {
		t.Errorf("Identifier changed across inits: %q then %q", firstID, secondID)
	}
}

func TestInitCommandPreservesExistingEnvFile(t *testing.T) {
	projectDir := setupTestEnvironment(t)
	envPath := filepath.Join(projectDir, secrets.EnvFileName)
	original := "# app config\nPORT=3000\n"
	if err := os.WriteFile(envPath, []byte(original), 0644); err != nil {
		t.Fatalf("Failed to seed .env: %v", err)
	}

	if _, err := runCommand(t, "init", "--project", projectDir); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	data, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatalf("Failed to read .env: %v", err)
	}
	if !strings.HasPrefix(string(data), original) {
		t.Errorf("init reordered or dropped existing .env content: %q", string(data))
	}
}

func TestInitCommandCorruptIdentifier(t *testing.T) {
	projectDir := setupTestEnvironment(t)
	envPath := filepath.Join(projectDir, secrets.EnvFileName)
	if err := os.WriteFile(envPath, []byte(secrets.IdentifierKey+"=oops\n"), 0644); err != nil {
		t.Fatalf("Failed to seed .env: %v", err)
	}

	_, err := runCommand(t, "init", "--project", projectDir)
	if err == nil {
		t.Fatal("Expected init to fail on a corrupt identifier")
	}
	if !strings.Contains(err.Error(), "malformed") {
		t.Errorf("Expected malformed-identifier error, got: %v", err)
	}
}

// lookupIdentifier reads ENVSTASH_ID from the given .env file.
func lookupIdentifier(t *testing.T, envPath string) (string, bool, error) {
	t.Helper()

	data, err := os.ReadFile(envPath)
	if err != nil {
		return "", false, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), secrets.IdentifierKey+"="); ok {
			return rest, true, nil
		}
	}
	return "", false, nil
}
