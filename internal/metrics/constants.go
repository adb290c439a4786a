package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Transfer metric names
const (
	MetricNameItemsExported      = "items_exported_total"
	MetricNameItemsImported      = "items_imported_total"
	MetricNameReferenceRebinds   = "reference_rebinds_total"
	MetricNameDuplicateConflicts = "duplicate_conflicts_total"
	MetricNameTransferJobs       = "transfer_jobs_total"
	MetricNameImportDuration     = "import_batch_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Transfer metric help text
const (
	HelpTextItemsExported      = "Total number of items written into export packages"
	HelpTextItemsImported      = "Total number of items processed by import batches"
	HelpTextReferenceRebinds   = "Total number of reference rebind attempts"
	HelpTextDuplicateConflicts = "Total number of duplicate identity conflicts detected"
	HelpTextTransferJobs       = "Total number of transfer jobs by terminal status"
	HelpTextImportDuration     = "Import batch duration in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// Label values for items_imported_total status
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Label values for reference_rebinds_total outcome
const (
	OutcomeRebound  = "rebound"
	OutcomeSkipped  = "skipped"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)
