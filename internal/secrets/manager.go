package secrets

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/torvikdev/envstash/internal/configs"
	serrors "github.com/torvikdev/envstash/internal/errors"
)

// EnvFileName is the dotenv file in the project directory that carries the
// ENVSTASH_ID link.
const EnvFileName = ".env"

// Manager composes the identifier store and the secret store into the
// public secret operations for one project. It owns the in-memory secret
// set for the session; every mutation is persisted synchronously, so the
// secret file always reflects the full in-memory set.
//
// A Manager is an explicit value owned by the caller. It is not safe for
// concurrent use, and concurrent processes mutating the same namespace are
// not coordinated: the last save wins.
type Manager struct {
	projectDir string
	envPath    string
	store      *Store

	projectID   string
	values      map[string]string
	initialized bool
}

// InitResult reports the outcome of establishing the project link.
type InitResult struct {
	// ProjectID is the resolved identifier.
	ProjectID string

	// NamespacePath is the directory holding this project's secret file.
	NamespacePath string

	// FirstRun reports whether the namespace was newly created.
	FirstRun bool
}

// Info summarizes the manager's configuration without mutating anything.
type Info struct {
	ProjectDir     string `json:"project_dir"`
	EnvFilePath    string `json:"env_file"`
	ProjectID      string `json:"project_id"`
	NamespacePath  string `json:"namespace_path"`
	SecretFilePath string `json:"secrets_file"`
	EntryCount     int    `json:"entry_count"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// NewManager returns an uninitialized Manager for the project at projectDir.
// Initialization is lazy: the first operation (or an explicit Init call)
// resolves the identifier and loads the secret set.
func NewManager(projectDir string, settings *configs.UserSettings) *Manager {
	return &Manager{
		projectDir: projectDir,
		envPath:    filepath.Join(projectDir, EnvFileName),
		store:      NewStore(settings),
	}
}

// Init establishes (or reconnects to) the project's secret namespace:
// resolve or create the identifier in the .env file, then load or create
// the secret file. Init is idempotent; calling it on an initialized manager
// re-reports the identifier without touching disk state.
//
// A failed Init leaves the manager uninitialized, so the next operation
// re-attempts it from scratch rather than running on partial state.
func (m *Manager) Init() (*InitResult, error) {
	if m.initialized {
		return &InitResult{
			ProjectID:     m.projectID,
			NamespacePath: m.store.NamespacePath(m.projectID),
		}, nil
	}

	id, _, err := ResolveOrCreateProjectID(m.envPath)
	if err != nil {
		return nil, err
	}

	values, firstRun, err := m.store.Ensure(id, m.projectDir)
	if err != nil {
		return nil, err
	}

	m.projectID = id
	m.values = values
	m.initialized = true

	return &InitResult{
		ProjectID:     id,
		NamespacePath: m.store.NamespacePath(id),
		FirstRun:      firstRun,
	}, nil
}

// Get returns the value stored under key, or ErrSecretNotFound.
func (m *Manager) Get(key string) (string, error) {
	if err := m.ensureInit(); err != nil {
		return "", err
	}

	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", serrors.ErrSecretNotFound, key)
	}
	return value, nil
}

// Set upserts key to value and persists the full set. Invalid keys are
// rejected before any I/O happens.
func (m *Manager) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := m.ensureInit(); err != nil {
		return err
	}

	previous, existed := m.values[key]
	m.values[key] = value

	if err := m.store.Save(m.projectID, m.values); err != nil {
		// Keep memory consistent with the untouched on-disk state.
		if existed {
			m.values[key] = previous
		} else {
			delete(m.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key if present and persists. Deleting an absent key is a
// no-op, not an error; the return value reports whether the key existed.
func (m *Manager) Delete(key string) (bool, error) {
	if err := m.ensureInit(); err != nil {
		return false, err
	}

	previous, existed := m.values[key]
	if !existed {
		return false, nil
	}
	delete(m.values, key)

	if err := m.store.Save(m.projectID, m.values); err != nil {
		m.values[key] = previous
		return false, err
	}
	return true, nil
}

// List returns a copy of the current secret set. Mutating the returned map
// does not affect manager state.
func (m *Manager) List() (map[string]string, error) {
	if err := m.ensureInit(); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(m.values))
	for key, value := range m.values {
		values[key] = value
	}
	return values, nil
}

// Clear removes all secrets and persists the empty set. The namespace
// directory and secret file remain. Returns the number of entries removed.
func (m *Manager) Clear() (int, error) {
	if err := m.ensureInit(); err != nil {
		return 0, err
	}

	previous := m.values
	count := len(previous)
	m.values = make(map[string]string)

	if err := m.store.Save(m.projectID, m.values); err != nil {
		m.values = previous
		return 0, err
	}
	return count, nil
}

// Info returns a summary of the current configuration. Introspection only.
func (m *Manager) Info() (*Info, error) {
	if err := m.ensureInit(); err != nil {
		return nil, err
	}

	namespacePath := m.store.NamespacePath(m.projectID)

	info := &Info{
		ProjectDir:     m.projectDir,
		EnvFilePath:    m.envPath,
		ProjectID:      m.projectID,
		NamespacePath:  namespacePath,
		SecretFilePath: m.store.SecretFilePath(m.projectID),
		EntryCount:     len(m.values),
	}

	// Metadata is informational; a namespace created by an older version
	// without metadata.toml still reports everything else.
	if meta, err := configs.LoadNamespaceMetadata(namespacePath); err == nil && !meta.Namespace.CreatedAt.IsZero() {
		info.CreatedAt = meta.Namespace.CreatedAt.Format(time.RFC3339)
	}

	return info, nil
}

func (m *Manager) ensureInit() error {
	if m.initialized {
		return nil
	}
	_, err := m.Init()
	return err
}

// ValidateKey rejects keys that cannot round-trip through the KEY=VALUE
// format: empty keys, keys containing = or newlines, keys starting with #
// (which a parser would skip as a comment), keys with surrounding
// whitespace (which a parser trims away), and keys starting with
// "export " (which a parser strips as a shell prefix).
func ValidateKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: key is empty", serrors.ErrInvalidKey)
	case strings.ContainsAny(key, "=\n\r"):
		return fmt.Errorf("%w: %q contains '=' or a newline", serrors.ErrInvalidKey, key)
	case strings.HasPrefix(key, "#"):
		return fmt.Errorf("%w: %q starts with '#'", serrors.ErrInvalidKey, key)
	case key != strings.TrimSpace(key):
		return fmt.Errorf("%w: %q has leading or trailing whitespace", serrors.ErrInvalidKey, key)
	case strings.HasPrefix(key, "export "):
		return fmt.Errorf("%w: %q starts with 'export '", serrors.ErrInvalidKey, key)
	}
	return nil
}
