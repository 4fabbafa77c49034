package configs

import (
	"testing"
	"time"
)

func TestSaveAndLoadNamespaceMetadata(t *testing.T) {
	namespaceDir := t.TempDir()

	meta := &NamespaceMetadata{
		Namespace: Namespace{
			ProjectID:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			ProjectName: "my-app",
			ProjectPath: "/home/dev/my-app",
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	if err := SaveNamespaceMetadata(namespaceDir, meta); err != nil {
		t.Fatalf("SaveNamespaceMetadata failed: %v", err)
	}

	loaded, err := LoadNamespaceMetadata(namespaceDir)
	if err != nil {
		t.Fatalf("LoadNamespaceMetadata failed: %v", err)
	}

	if loaded.Namespace.ProjectID != meta.Namespace.ProjectID {
		t.Errorf("ProjectID = %q, want %q", loaded.Namespace.ProjectID, meta.Namespace.ProjectID)
	}
	if loaded.Namespace.ProjectName != meta.Namespace.ProjectName {
		t.Errorf("ProjectName = %q, want %q", loaded.Namespace.ProjectName, meta.Namespace.ProjectName)
	}
	if !loaded.Namespace.CreatedAt.Equal(meta.Namespace.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", loaded.Namespace.CreatedAt, meta.Namespace.CreatedAt)
	}
}

func TestLoadNamespaceMetadataMissing(t *testing.T) {
	meta, err := LoadNamespaceMetadata(t.TempDir())
	if err != nil {
		t.Fatalf("LoadNamespaceMetadata failed for missing file: %v", err)
	}
	if meta == nil {
		t.Fatal("Expected empty metadata, got nil")
	}
	if meta.Namespace.ProjectID != "" {
		t.Errorf("Expected empty ProjectID, got %q", meta.Namespace.ProjectID)
	}
}
