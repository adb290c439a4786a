package transfer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/metrics"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// Progress is the fire-and-forget notification emitted after each item.
type Progress struct {
	Processed int
	Selected  int
	LastFile  string
}

// BatchRequest describes one import batch over an already-validated
// package.
type BatchRequest struct {
	Package    *domain.Package
	PackageDir string
	TargetDir  string

	// Report carries the resolution decisions, overrides already merged.
	Report *domain.ResolutionReport

	// Selection holds the item indices to import, in operator order.
	Selection []int

	Target runtime.Configuration

	// OnProgress is called after each item completes. It must not block;
	// the loop waits for no one. May be nil.
	OnProgress func(Progress)

	// Cancelled is polled before each item starts, never mid-item.
	// May be nil.
	Cancelled func() bool
}

// Importer copies selected items into the target folder and re-binds
// their references through the live target configuration, one item at a
// time.
type Importer struct {
	fs       fsops.FS
	thumbExt string
}

func NewImporter(fs fsops.FS, policy Policy) *Importer {
	ext := policy.ThumbnailExt
	if ext == "" {
		ext = domain.DefaultThumbnailExt
	}
	return &Importer{fs: fs, thumbExt: ext}
}

// Run executes the batch strictly sequentially in selection order. A
// single item's failure never aborts the batch; only an unusable target
// folder stops the run before any item is touched. A cancelled batch
// returns the results accumulated so far with the cancelled flag set.
func (imp *Importer) Run(ctx context.Context, req BatchRequest, errorLimit int) (*domain.BatchSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	if err := imp.fs.EnsureDir(req.TargetDir); err != nil {
		return nil, fmt.Errorf("failed to create target folder: %w", err)
	}

	results := make([]domain.ItemImportResult, 0, len(req.Selection))
	cancelled := false

	for _, itemIndex := range req.Selection {
		if isCancelled(ctx, req.Cancelled) {
			cancelled = true
			break
		}

		result := imp.importItem(ctx, req, itemIndex)
		results = append(results, result)

		status := metrics.StatusSucceeded
		if !result.Success {
			status = metrics.StatusFailed
		}
		metrics.ItemsImported.WithLabelValues(status).Inc()

		if req.OnProgress != nil {
			req.OnProgress(Progress{
				Processed: len(results),
				Selected:  len(req.Selection),
				LastFile:  result.FileName,
			})
		}
	}

	summary := Aggregate(results, len(req.Selection), cancelled, errorLimit)
	metrics.ImportDuration.Observe(time.Since(start).Seconds())
	log.Info("import batch finished",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"cancelled", summary.Cancelled)
	return summary, nil
}

// importItem runs the per-item pipeline: copy files, load, rebind
// references, save. Errors abort the item at the failing step; warnings
// never do.
func (imp *Importer) importItem(ctx context.Context, req BatchRequest, itemIndex int) domain.ItemImportResult {
	item := req.Package.Items[itemIndex]
	result := domain.ItemImportResult{FileName: item.FileName, Success: true}

	src := filepath.Join(req.PackageDir, item.FileName)
	dst := filepath.Join(req.TargetDir, item.FileName)
	if err := imp.fs.CopyFile(src, dst, true); err != nil {
		result.AddError(fmt.Sprintf("failed to copy payload: %v", err))
		return result
	}

	imp.copyThumbnail(ctx, req, item.FileName, &result)

	handle, err := req.Target.OpenItem(ctx, dst)
	if err != nil {
		result.AddError(fmt.Sprintf("failed to load item in target: %v", err))
		return result
	}
	defer func() {
		_ = handle.Close()
	}()

	imp.rebindReferences(ctx, req, itemIndex, item, handle, &result)

	// Save failures leave the copied file in place, there is no rollback
	if err := handle.Save(ctx); err != nil {
		result.AddError(fmt.Sprintf("failed to save item: %v", err))
	}
	return result
}

// rebindReferences applies the resolution decision for every rebindable
// reference the item carries. Rebinding is best effort: a name that
// vanished between validation and now records a warning, never an error.
func (imp *Importer) rebindReferences(ctx context.Context, req BatchRequest, itemIndex int, item domain.Item, handle runtime.ItemHandle, result *domain.ItemImportResult) {
	log := logger.FromContext(ctx)

	for _, category := range domain.Categories() {
		if !category.Rebindable() {
			continue
		}
		name, ok := item.References.Get(category)
		if !ok {
			continue
		}

		entry, found := req.Report.Find(itemIndex, category)
		if !found || entry.Status == domain.StatusUnresolved {
			result.AddWarning(fmt.Sprintf("%s %q left unbound: no match in target", category, name))
			metrics.ReferenceRebinds.WithLabelValues(metrics.OutcomeSkipped).Inc()
			continue
		}

		bindName := entry.EffectiveName()
		err := handle.Rebind(ctx, category, bindName)
		switch {
		case err == nil:
			metrics.ReferenceRebinds.WithLabelValues(metrics.OutcomeRebound).Inc()
		case errors.Is(err, runtime.ErrNameNotFound):
			result.AddWarning(fmt.Sprintf("%s %q not rebound: no longer found in target", category, bindName))
			metrics.ReferenceRebinds.WithLabelValues(metrics.OutcomeNotFound).Inc()
		default:
			result.AddWarning(fmt.Sprintf("%s %q not rebound: %v", category, bindName, err))
			metrics.ReferenceRebinds.WithLabelValues(metrics.OutcomeFailed).Inc()
			log.Warn("rebind failed", "file", item.FileName, "category", category, "name", bindName, "error", err)
		}
	}
}

// copyThumbnail brings the companion image along when the package has
// one. Failure is a warning, the payload governs item viability.
func (imp *Importer) copyThumbnail(ctx context.Context, req BatchRequest, fileName string, result *domain.ItemImportResult) {
	thumbName := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + imp.thumbExt

	src := filepath.Join(req.PackageDir, thumbName)
	exists, err := imp.fs.Exists(src)
	if err != nil || !exists {
		return
	}

	if err := imp.fs.CopyFile(src, filepath.Join(req.TargetDir, thumbName), true); err != nil {
		result.AddWarning(fmt.Sprintf("thumbnail not copied for %s: %v", fileName, err))
		logger.FromContext(ctx).Warn("thumbnail copy failed", "file", thumbName, "error", err)
	}
}

func isCancelled(ctx context.Context, flag func() bool) bool {
	if ctx.Err() != nil {
		return true
	}
	return flag != nil && flag()
}
