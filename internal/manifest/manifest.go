// Package manifest reads and writes the manifest.json at the root of an
// exported package folder. Loading gates the raw bytes through an embedded
// JSON Schema before decoding so malformed packages fail with a location
// instead of a stray unmarshal error.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/fsops"
)

// Loader reads a package manifest from a package folder.
type Loader interface {
	// Load decodes the manifest in dir. The second return value lists
	// non-fatal load warnings, currently one per manifest item whose
	// payload file is missing from the folder.
	Load(dir string) (*domain.Package, []string, error)
}

// Writer serializes a package manifest into a package folder.
type Writer interface {
	Write(dir string, pkg *domain.Package) error
}

type loader struct {
	fs fsops.FS
}

func NewLoader(fs fsops.FS) Loader {
	return &loader{fs: fs}
}

func (l *loader) Load(dir string) (*domain.Package, []string, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrPackageNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if err := validateSchema(data); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}

	var pkg domain.Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}

	var warnings []string
	for _, item := range pkg.Items {
		exists, err := l.fs.Exists(filepath.Join(dir, item.FileName))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check payload %s: %w", item.FileName, err)
		}
		if !exists {
			warnings = append(warnings, fmt.Sprintf("payload file missing from package: %s", item.FileName))
		}
	}

	return &pkg, warnings, nil
}

type writer struct {
	fs fsops.FS
}

func NewWriter(fs fsops.FS) Writer {
	return &writer{fs: fs}
}

func (w *writer) Write(dir string, pkg *domain.Package) error {
	if err := w.fs.EnsureDir(dir); err != nil {
		return fmt.Errorf("failed to create package folder: %w", err)
	}

	// The item list serializes as an array even when empty, never null.
	if pkg.Items == nil {
		clone := *pkg
		clone.Items = []domain.Item{}
		pkg = &clone
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	path := filepath.Join(dir, domain.ManifestFileName)
	if err := w.fs.AtomicWrite(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
