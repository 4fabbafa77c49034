package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const metadataFileName = "metadata.toml"

// NamespaceMetadata describes which project a secret namespace belongs to.
// It is written once when the namespace is created and is informational
// only: envstash never uses it for lookups (the identifier in the project's
// .env file is the authoritative link).
type NamespaceMetadata struct {
	Namespace Namespace `toml:"namespace"`
}

type Namespace struct {
	ProjectID   string    `toml:"project_id"`
	ProjectName string    `toml:"project_name"`
	ProjectPath string    `toml:"project_path"`
	CreatedAt   time.Time `toml:"created_at"`
}

// SaveNamespaceMetadata writes metadata.toml into the namespace directory.
func SaveNamespaceMetadata(namespaceDir string, meta *NamespaceMetadata) error {
	metadataPath := filepath.Join(namespaceDir, metadataFileName)

	if err := SaveTOML(metadataPath, meta); err != nil {
		return fmt.Errorf("failed to save namespace metadata: %w", err)
	}

	return nil
}

// LoadNamespaceMetadata reads metadata.toml from the namespace directory.
// A missing file is not an error; it returns an empty metadata struct so
// callers can treat pre-metadata namespaces uniformly.
func LoadNamespaceMetadata(namespaceDir string) (*NamespaceMetadata, error) {
	metadataPath := filepath.Join(namespaceDir, metadataFileName)

	meta := &NamespaceMetadata{}

	if _, err := os.Stat(metadataPath); os.IsNotExist(err) {
		return meta, nil
	}

	if err := LoadTOML(metadataPath, meta); err != nil {
		return nil, fmt.Errorf("failed to load namespace metadata: %w", err)
	}

	return meta, nil
}
