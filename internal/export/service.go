// Package export builds transferable content packages: it captures each
// selected item's reference names as currently bound in the source
// configuration, copies payload and thumbnail files into the output
// folder, and writes the package manifest last.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/manifest"
	"github.com/fabworks/contentbridge/internal/metrics"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// Service exports content items from a source configuration into a
// package folder.
type Service interface {
	Export(ctx context.Context, req Request) (*Result, error)
}

// Request selects what to export and where to.
type Request struct {
	// ItemPaths are the payload files to export, in operator order.
	ItemPaths []string
	// OutputDir is the package folder, created if absent.
	OutputDir string
	// ExportedBy is recorded in the manifest as provenance.
	ExportedBy string
}

// Result reports what the export actually produced.
type Result struct {
	PackageDir string        `json:"packageDir"`
	Exported   int           `json:"exported"`
	Skipped    []SkippedItem `json:"skipped,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// SkippedItem is one source item left out of the package.
type SkippedItem struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type service struct {
	source   runtime.Configuration
	fs       fsops.FS
	writer   manifest.Writer
	thumbExt string
}

// NewService creates an export service bound to one source configuration.
func NewService(source runtime.Configuration, fs fsops.FS, writer manifest.Writer, thumbExt string) Service {
	if thumbExt == "" {
		thumbExt = domain.DefaultThumbnailExt
	}
	return &service{source: source, fs: fs, writer: writer, thumbExt: thumbExt}
}

// Export runs one export batch. A single item's read or copy failure
// skips that item with a warning; the batch only fails when the output
// folder is unusable or the manifest cannot be written.
func (s *service) Export(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromContext(ctx)

	if err := s.fs.EnsureDir(req.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	pkg := &domain.Package{
		ConfigurationName: s.source.Name(),
		ExportedBy:        req.ExportedBy,
		ExportedAt:        time.Now().UTC(),
	}
	result := &Result{PackageDir: req.OutputDir}
	seen := make(map[string]struct{}, len(req.ItemPaths))

	for _, path := range req.ItemPaths {
		fileName := filepath.Base(path)
		if _, dup := seen[fileName]; dup {
			s.skip(log, result, path, fmt.Sprintf("file name %s already exported in this package", fileName))
			continue
		}

		item, err := s.exportItem(ctx, path, req.OutputDir, result)
		if err != nil {
			s.skip(log, result, path, err.Error())
			continue
		}

		seen[fileName] = struct{}{}
		pkg.Items = append(pkg.Items, *item)
		result.Exported++
	}

	if err := s.writer.Write(req.OutputDir, pkg); err != nil {
		return nil, err
	}

	metrics.ItemsExported.Add(float64(result.Exported))
	log.Info("export finished",
		"configuration", pkg.ConfigurationName,
		"exported", result.Exported,
		"skipped", len(result.Skipped))
	return result, nil
}

// exportItem captures one item's metadata and copies its files.
func (s *service) exportItem(ctx context.Context, path, outputDir string, result *Result) (*domain.Item, error) {
	handle, err := s.source.OpenItem(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open item: %w", err)
	}
	defer func() {
		_ = handle.Close()
	}()

	refs, err := handle.References(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read references: %w", err)
	}

	productList, err := handle.ProductList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read product list: %w", err)
	}

	fileName := filepath.Base(path)
	if err := s.fs.CopyFile(path, filepath.Join(outputDir, fileName), true); err != nil {
		return nil, fmt.Errorf("failed to copy payload: %w", err)
	}

	s.copyThumbnail(ctx, path, outputDir, result)

	return &domain.Item{
		FileName:      fileName,
		SourceFolder:  filepath.ToSlash(filepath.Dir(path)),
		CID:           handle.CID(),
		DatabaseID:    handle.DatabaseID(),
		IsProductList: productList != nil,
		References:    refs,
		ProductList:   productList,
	}, nil
}

// copyThumbnail copies the companion image when one exists. A failed copy
// is a warning, the payload governs whether the item itself survives.
func (s *service) copyThumbnail(ctx context.Context, payloadPath, outputDir string, result *Result) {
	thumbPath := thumbnailPath(payloadPath, s.thumbExt)

	exists, err := s.fs.Exists(thumbPath)
	if err != nil || !exists {
		return
	}

	if err := s.fs.CopyFile(thumbPath, filepath.Join(outputDir, filepath.Base(thumbPath)), true); err != nil {
		msg := fmt.Sprintf("thumbnail not exported for %s: %v", filepath.Base(payloadPath), err)
		result.Warnings = append(result.Warnings, msg)
		logger.FromContext(ctx).Warn("thumbnail copy failed", "path", thumbPath, "error", err)
	}
}

func (s *service) skip(log *slog.Logger, result *Result, path, reason string) {
	result.Skipped = append(result.Skipped, SkippedItem{Path: path, Reason: reason})
	log.Warn("item skipped during export", "path", path, "reason", reason)
}

// thumbnailPath swaps the payload extension for the thumbnail extension.
func thumbnailPath(payloadPath, thumbExt string) string {
	ext := filepath.Ext(payloadPath)
	return strings.TrimSuffix(payloadPath, ext) + thumbExt
}
