package handler

import (
	"context"
	"net/http"

	"github.com/fabworks/contentbridge/internal/export"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/manifest"
	"github.com/fabworks/contentbridge/internal/runtime"
	"github.com/fabworks/contentbridge/internal/transfer"
)

// ExportRequest selects what to export and where the package goes
type ExportRequest struct {
	Configuration string   `json:"configuration" validate:"required"`
	ItemPaths     []string `json:"itemPaths" validate:"required,min=1,dive,required"`
	OutputDir     string   `json:"outputDir" validate:"required"`
	ExportedBy    string   `json:"exportedBy" validate:"required,max=100"`
}

// JobQueuedResponse acknowledges a queued background job
type JobQueuedResponse struct {
	JobID   string `json:"jobId"`
	Message string `json:"message"`
}

// ExportHandler handles package export requests
type ExportHandler struct {
	registry *runtime.Registry
	store    *job.Store
	fs       fsops.FS
	policy   transfer.Policy
}

// NewExportHandler creates a new export handler
func NewExportHandler(registry *runtime.Registry, store *job.Store, fs fsops.FS, policy transfer.Policy) *ExportHandler {
	return &ExportHandler{
		registry: registry,
		store:    store,
		fs:       fs,
		policy:   policy,
	}
}

// HandleExport queues a package export
// @Summary Export items into a package
// @Description Capture the selected items' reference names from the source configuration and build a package folder. Runs as a background job.
// @Tags exports
// @Accept json
// @Produce json
// @Param request body ExportRequest true "Export request"
// @Success 202 {object} JobQueuedResponse "Export queued"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Configuration not found"
// @Failure 503 {object} ErrorResponse "Job queue full"
// @Router /api/v1/exports [post]
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req ExportRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Export"); err != nil {
		return
	}

	// Resolve the source configuration now so a bad name fails the
	// request instead of the job.
	source, err := h.registry.Get(req.Configuration)
	if err != nil {
		respondServiceError(w, r, ErrMsgExportFailed, err)
		return
	}

	svc := export.NewService(source, h.fs, manifest.NewWriter(h.fs), h.policy.ThumbnailExt)
	id, err := h.store.Create(job.KindExport, func(jobCtx context.Context, jobID string) error {
		result, runErr := svc.Export(jobCtx, export.Request{
			ItemPaths:  req.ItemPaths,
			OutputDir:  req.OutputDir,
			ExportedBy: req.ExportedBy,
		})
		if result != nil {
			h.store.SetExport(jobID, result)
		}
		return runErr
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgExportFailed, err)
		return
	}

	log.Info("Export queued",
		"jobID", id,
		"configuration", req.Configuration,
		"items", len(req.ItemPaths))

	respondJSON(w, http.StatusAccepted, JobQueuedResponse{
		JobID:   id,
		Message: "Export queued",
	})
}
