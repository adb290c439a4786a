package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/logger"
)

// JobListResponse wraps the job records newest first
type JobListResponse struct {
	Jobs []job.Job `json:"jobs"`
}

// JobsHandler handles job tracking requests
type JobsHandler struct {
	store *job.Store
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(store *job.Store) *JobsHandler {
	return &JobsHandler{store: store}
}

// HandleList lists all jobs
// @Summary List jobs
// @Description List export and import jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {object} JobListResponse
// @Router /api/v1/jobs [get]
func (h *JobsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, JobListResponse{Jobs: h.store.List()})
}

// HandleGet returns one job with its progress and result
// @Summary Get a job
// @Description Get a job's status, progress and, once finished, its summary
// @Tags jobs
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 200 {object} job.Job
// @Failure 404 {object} ErrorResponse "Job not found"
// @Router /api/v1/jobs/{jobID} [get]
func (h *JobsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "Missing job ID")
		return
	}

	j, err := h.store.Get(jobID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListJobsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, j)
}

// HandleCancel requests cancellation of a job
// @Summary Cancel a job
// @Description Cancel a queued or running job. A running import stops between items; finished items stay imported.
// @Tags jobs
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 200 {object} SuccessResponse "Cancellation requested"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 409 {object} ErrorResponse "Job already finished"
// @Router /api/v1/jobs/{jobID}/cancel [post]
func (h *JobsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	jobID := chi.URLParam(r, "jobID")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "Missing job ID")
		return
	}

	if err := h.store.Cancel(jobID); err != nil {
		if errors.Is(err, job.ErrJobFinished) {
			respondError(w, http.StatusConflict, ErrMsgJobFinished)
			return
		}
		respondServiceError(w, r, ErrMsgCancelJobFailed, err)
		return
	}

	log.Info("Job cancellation requested", "jobID", jobID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCancellationRequested})
}
