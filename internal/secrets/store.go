package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/torvikdev/envstash/internal/configs"
	"github.com/torvikdev/envstash/internal/envfile"
	serrors "github.com/torvikdev/envstash/internal/errors"
)

// SecretFileName is the name of the key=value file inside each namespace.
const SecretFileName = ".secrets"

// Store performs durable reads and writes of a project's secret file under
// the user-scoped data directory.
type Store struct {
	settings *configs.UserSettings
}

// NewStore returns a Store rooted at the given user settings.
func NewStore(settings *configs.UserSettings) *Store {
	return &Store{settings: settings}
}

// NamespacePath returns the directory holding the secret file for id.
func (s *Store) NamespacePath(id string) string {
	return filepath.Join(s.settings.DataPath, id)
}

// SecretFilePath returns the path of the secret file for id.
func (s *Store) SecretFilePath(id string) string {
	return filepath.Join(s.NamespacePath(id), SecretFileName)
}

// Ensure creates the namespace directory and an empty secret file for id if
// they do not exist, then loads the secret set. A missing namespace is the
// expected first-run path, not an error. firstRun reports whether the secret
// file was newly created.
//
// projectDir is recorded in the namespace metadata on first run so a human
// inspecting the data directory can tell which project a namespace serves.
func (s *Store) Ensure(id, projectDir string) (values map[string]string, firstRun bool, err error) {
	namespaceDir := s.NamespacePath(id)
	if err := os.MkdirAll(namespaceDir, 0700); err != nil {
		return nil, false, fmt.Errorf("%w: failed to create %s: %v", serrors.ErrStorageUnavailable, namespaceDir, err)
	}

	secretPath := s.SecretFilePath(id)
	if _, err := os.Stat(secretPath); os.IsNotExist(err) {
		if err := s.Save(id, map[string]string{}); err != nil {
			return nil, false, err
		}
		firstRun = true

		meta := &configs.NamespaceMetadata{
			Namespace: configs.Namespace{
				ProjectID:   id,
				ProjectName: filepath.Base(projectDir),
				ProjectPath: projectDir,
				CreatedAt:   time.Now().UTC(),
			},
		}
		if err := configs.SaveNamespaceMetadata(namespaceDir, meta); err != nil {
			return nil, false, fmt.Errorf("%w: %v", serrors.ErrStorageUnavailable, err)
		}
	} else if err != nil {
		return nil, false, fmt.Errorf("%w: failed to stat %s: %v", serrors.ErrStorageUnavailable, secretPath, err)
	}

	values, err = s.Load(id)
	if err != nil {
		return nil, false, err
	}
	return values, firstRun, nil
}

// Load parses the secret file for id. The file must exist (Ensure creates
// it); any malformed line fails the whole load.
func (s *Store) Load(id string) (map[string]string, error) {
	secretPath := s.SecretFilePath(id)

	values, err := envfile.ParseFile(secretPath)
	if err != nil {
		if errors.Is(err, serrors.ErrMalformedSecretLine) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", serrors.ErrStorageUnavailable, err)
	}
	return values, nil
}

// Save serializes the full secret set for id, replacing the previous file
// content entirely. The serialized content is written to a temporary file in
// the namespace directory and renamed into place, so readers never observe
// a half-written file and a failed save leaves the previous state intact.
func (s *Store) Save(id string, values map[string]string) error {
	namespaceDir := s.NamespacePath(id)

	// The namespace may have been removed out-of-band since Ensure ran;
	// recreate it rather than failing the mutation.
	if err := os.MkdirAll(namespaceDir, 0700); err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", serrors.ErrStorageUnavailable, namespaceDir, err)
	}

	tmp, err := os.CreateTemp(namespaceDir, SecretFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file in %s: %v", serrors.ErrStorageUnavailable, namespaceDir, err)
	}
	tmpPath := tmp.Name()

	// Owner-only where the filesystem supports permission bits. Hardening is
	// best effort: envstash is a local convenience, not a vault.
	_ = tmp.Chmod(0600)

	if err := envfile.Serialize(tmp, values); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write %s: %v", serrors.ErrStorageUnavailable, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close %s: %v", serrors.ErrStorageUnavailable, tmpPath, err)
	}

	secretPath := s.SecretFilePath(id)
	if err := os.Rename(tmpPath, secretPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace %s: %v", serrors.ErrStorageUnavailable, secretPath, err)
	}

	return nil
}
