package domain

// DuplicateConflict pairs an incoming package item with a file already
// present at the target location that carries the same database identity.
type DuplicateConflict struct {
	ImportFileName   string `json:"importFileName"`
	DatabaseID       string `json:"databaseId"`
	ExistingFilePath string `json:"existingFilePath"`
}

// ItemImportResult is the outcome of importing one item. Warnings and
// errors are operator-facing strings; an item with any recorded error
// counts as failed even when its file copy succeeded.
type ItemImportResult struct {
	FileName string   `json:"fileName"`
	Success  bool     `json:"success"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// AddWarning records a non-fatal observation on the item.
func (r *ItemImportResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddError records a failure on the item and marks it unsuccessful.
func (r *ItemImportResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Success = false
}

// BatchSummary aggregates a finished or cancelled import batch for
// display. Warnings are de-duplicated in first-seen order; errors are
// capped to a display limit by the aggregator.
type BatchSummary struct {
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Cancelled bool               `json:"cancelled"`
	Warnings  []string           `json:"warnings,omitempty"`
	Errors    []string           `json:"errors,omitempty"`
	Results   []ItemImportResult `json:"results"`
}
