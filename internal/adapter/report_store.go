package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// ManifestStore persists the per-target merge reports of a run.
type ManifestStore interface {
	SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error
	LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error)
}

// YAMLManifestStore stores manifests as YAML documents.
type YAMLManifestStore struct{}

// NewManifestStore constructs a YAMLManifestStore.
func NewManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// SaveManifest encodes manifest as YAML and writes it to path, creating
// missing parent directories.
func (s *YAMLManifestStore) SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// LoadManifest reads a manifest previously written by SaveManifest.
func (s *YAMLManifestStore) LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return m.Manifest{}, err
	}

	// #nosec G304 - manifest path is chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	return manifest, nil
}
