package handler

import (
	"context"
	"net/http"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/session"
	"github.com/fabworks/contentbridge/internal/transfer"
)

// PreviewImportRequest points at a package and the configuration it
// should land in
type PreviewImportRequest struct {
	PackageDir          string `json:"packageDir" validate:"required"`
	TargetConfiguration string `json:"targetConfiguration" validate:"required"`
	TargetDir           string `json:"targetDir" validate:"required"`
}

// PreviewImportResponse carries the preview and the session ID that a
// later import must quote
type PreviewImportResponse struct {
	SessionID string                          `json:"sessionId"`
	Preview   *transfer.Preview               `json:"preview"`
	Counts    map[domain.ResolutionStatus]int `json:"counts"`
}

// OverrideSelection replaces one unresolved reference with a name the
// operator picked. An empty name skips the reference instead.
type OverrideSelection struct {
	ItemIndex int    `json:"itemIndex" validate:"min=0"`
	Category  string `json:"category" validate:"required,refcategory"`
	Name      string `json:"name"`
}

// StartImportRequest runs a previewed package into the target. A nil
// selection imports every item; an empty one is rejected.
type StartImportRequest struct {
	SessionID               string              `json:"sessionId" validate:"required"`
	Selection               []int               `json:"selection"`
	Overrides               []OverrideSelection `json:"overrides,omitempty" validate:"omitempty,dive"`
	ProceedDespiteConflicts bool                `json:"proceedDespiteConflicts"`
}

// TransferHandler handles package preview and import requests
type TransferHandler struct {
	transferSvc transfer.Service
	sessions    *session.Store
	store       *job.Store
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferSvc transfer.Service, sessions *session.Store, store *job.Store) *TransferHandler {
	return &TransferHandler{
		transferSvc: transferSvc,
		sessions:    sessions,
		store:       store,
	}
}

// HandlePreview builds an import preview
// @Summary Preview a package import
// @Description Resolve every captured reference against the target configuration's lookups and report duplicates already present in the target. Nothing is written.
// @Tags imports
// @Accept json
// @Produce json
// @Param request body PreviewImportRequest true "Preview request"
// @Success 200 {object} PreviewImportResponse "Preview built"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Configuration or package not found"
// @Failure 422 {object} ErrorResponse "Package empty or manifest invalid"
// @Router /api/v1/imports/preview [post]
func (h *TransferHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PreviewImportRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview"); err != nil {
		return
	}

	preview, err := h.transferSvc.Preview(r.Context(), transfer.PreviewRequest{
		PackageDir:          req.PackageDir,
		TargetConfiguration: req.TargetConfiguration,
		TargetDir:           req.TargetDir,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgPreviewFailed, err)
		return
	}

	sessionID := h.sessions.Put(preview)
	log.Info("Preview session created",
		"sessionID", sessionID,
		"configuration", req.TargetConfiguration,
		"items", len(preview.Package.Items))

	respondJSON(w, http.StatusOK, PreviewImportResponse{
		SessionID: sessionID,
		Preview:   preview,
		Counts:    preview.Report.Counts(),
	})
}

// HandleImport queues a previewed import
// @Summary Import a previewed package
// @Description Apply operator overrides, re-check duplicates unless proceedDespiteConflicts is set, and run the import as a background job.
// @Tags imports
// @Accept json
// @Produce json
// @Param request body StartImportRequest true "Import request"
// @Success 202 {object} JobQueuedResponse "Import queued"
// @Failure 400 {object} ErrorResponse "Invalid selection or override"
// @Failure 404 {object} ErrorResponse "Session or configuration not found"
// @Failure 409 {object} ConflictResponse "Duplicate items present in target"
// @Failure 503 {object} ErrorResponse "Job queue full"
// @Router /api/v1/imports [post]
func (h *TransferHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req StartImportRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Import"); err != nil {
		return
	}

	preview, err := h.sessions.Get(req.SessionID)
	if err != nil {
		respondServiceError(w, r, ErrMsgImportFailed, err)
		return
	}

	// Gate checks run on the request so conflicts and bad overrides
	// surface as HTTP errors, not as a failed job.
	plan, err := h.transferSvc.Plan(r.Context(), transfer.ExecuteRequest{
		Preview:   preview,
		Selection: req.Selection,
		Overrides: toOverrideSelections(req.Overrides),
		Proceed:   req.ProceedDespiteConflicts,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgImportFailed, err)
		return
	}

	id, err := h.store.Create(job.KindImport, func(jobCtx context.Context, jobID string) error {
		plan.OnProgress = func(p transfer.Progress) {
			h.store.UpdateProgress(jobID, p.Processed, p.Selected, p.LastFile)
		}
		summary, runErr := h.transferSvc.Run(jobCtx, plan)
		if summary != nil {
			h.store.SetSummary(jobID, summary)
		}
		return runErr
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgImportFailed, err)
		return
	}

	// The session stays alive so a conflicted import can be retried
	// with proceedDespiteConflicts without a fresh preview.
	log.Info("Import queued",
		"jobID", id,
		"sessionID", req.SessionID,
		"configuration", preview.TargetConfiguration)

	respondJSON(w, http.StatusAccepted, JobQueuedResponse{
		JobID:   id,
		Message: "Import queued",
	})
}

// toOverrideSelections converts the wire overrides to the domain map.
// Repeated item and category pairs keep the last entry.
func toOverrideSelections(overrides []OverrideSelection) domain.OverrideSelections {
	if len(overrides) == 0 {
		return nil
	}
	selections := make(domain.OverrideSelections, len(overrides))
	for _, o := range overrides {
		key := domain.OverrideKey{ItemIndex: o.ItemIndex, Category: domain.Category(o.Category)}
		selections[key] = o.Name
	}
	return selections
}
