package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain
// consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Export error messages
	ErrMsgExportFailed = "Failed to export package"

	// Import error messages
	ErrMsgPreviewFailed = "Failed to preview package"
	ErrMsgImportFailed  = "Failed to start import"

	// Job error messages
	ErrMsgListJobsFailed  = "Failed to list jobs"
	ErrMsgCancelJobFailed = "Failed to cancel job"
	ErrMsgJobFinished     = "Job already finished"

	// Configuration error messages
	ErrMsgListConfigurationsFailed = "Failed to list configurations"
	ErrMsgReadLookupsFailed        = "Failed to read configuration lookups"
)

// Success messages for API responses
const (
	MsgCancellationRequested = "Cancellation requested"
)
