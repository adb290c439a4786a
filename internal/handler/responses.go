package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/runtime"
	"github.com/fabworks/contentbridge/internal/transfer"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse carries the duplicate identities that block an import
// until the operator confirms.
type ConflictResponse struct {
	Error     string                     `json:"error"`
	Conflicts []domain.DuplicateConflict `json:"conflicts"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first; headers are already sent, so an
	// encode failure can only be logged
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes its HTTP shape.
// Duplicate-conflict errors keep their conflict list in the body.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(action, "error", err)

	var conflictErr *transfer.ConflictError
	if errors.As(err, &conflictErr) {
		respondJSON(w, http.StatusConflict, ConflictResponse{
			Error:     ErrMsgDuplicatesPresent,
			Conflicts: conflictErr.Conflicts,
		})
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgConfigurationUnknown = "Configuration not found"
	ErrMsgPackageMissing       = "Package not found. Check the package folder path."
	ErrMsgPackageEmpty         = "Package contains no items"
	ErrMsgManifestInvalid      = "Package manifest is invalid"
	ErrMsgSessionGone          = "Preview session not found or expired. Run preview again."
	ErrMsgJobUnknown           = "Job not found"
	ErrMsgDuplicatesPresent    = "Duplicate items present in target. Confirm to proceed."
	ErrMsgOverrideService      = "Service references cannot be overridden"
	ErrMsgItemIndexInvalid     = "Item index is outside the package"
	ErrMsgSelectionInvalid     = "Invalid selection or override input"
	ErrMsgQueueFull            = "Transfer queue is full. Try again later."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrConfigurationNotFound):
		return http.StatusNotFound, ErrMsgConfigurationUnknown
	case errors.Is(err, domain.ErrPackageNotFound):
		return http.StatusNotFound, ErrMsgPackageMissing
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionGone
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, ErrMsgJobUnknown
	case errors.Is(err, domain.ErrEmptyPackage):
		return http.StatusUnprocessableEntity, ErrMsgPackageEmpty
	case errors.Is(err, domain.ErrInvalidManifest):
		return http.StatusUnprocessableEntity, ErrMsgManifestInvalid
	case errors.Is(err, domain.ErrDuplicateConflicts):
		return http.StatusConflict, ErrMsgDuplicatesPresent
	case errors.Is(err, domain.ErrOverrideNotAllowed):
		return http.StatusBadRequest, ErrMsgOverrideService
	case errors.Is(err, domain.ErrItemIndexOutOfRange):
		return http.StatusBadRequest, ErrMsgItemIndexInvalid
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgSelectionInvalid
	case errors.Is(err, runtime.ErrNotRebindable):
		return http.StatusBadRequest, ErrMsgOverrideService
	case errors.Is(err, job.ErrQueueFull):
		return http.StatusServiceUnavailable, ErrMsgQueueFull
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
