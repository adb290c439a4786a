// Package duplicate detects identity collisions between incoming package
// items and payload files already present at the target location. The
// check is advisory: it reports conflicts before any file is copied, the
// operator decides whether to proceed.
package duplicate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/metrics"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// Checker scans a target folder for databaseId collisions.
type Checker struct {
	fs       fsops.FS
	thumbExt string
}

func New(fs fsops.FS, thumbExt string) *Checker {
	if thumbExt == "" {
		thumbExt = domain.DefaultThumbnailExt
	}
	return &Checker{fs: fs, thumbExt: thumbExt}
}

// Check compares the package items' identities with the identities of the
// files already in targetDir, read through the target configuration. One
// conflict is reported per (incoming item, existing file) collision, in
// package order. Files the configuration cannot read are skipped, they
// cannot collide observably.
func (c *Checker) Check(ctx context.Context, pkg *domain.Package, target runtime.Configuration, targetDir string) ([]domain.DuplicateConflict, error) {
	log := logger.FromContext(ctx)

	exists, err := c.fs.Exists(targetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check target folder: %w", err)
	}
	if !exists {
		return nil, nil
	}

	names, err := c.fs.ListFiles(targetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list target folder: %w", err)
	}

	// Identity of every readable payload already present
	existing := make(map[string][]string)
	for _, name := range names {
		if strings.HasSuffix(name, c.thumbExt) {
			continue
		}
		path := filepath.Join(targetDir, name)
		id, err := target.ItemIdentity(ctx, path)
		if err != nil {
			log.Debug("skipping unreadable file during duplicate scan", "path", path, "error", err)
			continue
		}
		existing[id] = append(existing[id], path)
	}

	var conflicts []domain.DuplicateConflict
	for _, item := range pkg.Items {
		if item.DatabaseID == "" {
			continue
		}
		for _, path := range existing[item.DatabaseID] {
			conflicts = append(conflicts, domain.DuplicateConflict{
				ImportFileName:   item.FileName,
				DatabaseID:       item.DatabaseID,
				ExistingFilePath: path,
			})
		}
	}

	if len(conflicts) > 0 {
		metrics.DuplicateConflicts.Add(float64(len(conflicts)))
		log.Info("duplicate identities detected in target", "conflicts", len(conflicts), "target", targetDir)
	}
	return conflicts, nil
}
