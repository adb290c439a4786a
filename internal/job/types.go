package job

import (
	"context"
	"time"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/export"
)

// Status is the lifecycle state of an asynchronous transfer job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusCanceled
}

// Kind distinguishes the two long-running operations.
type Kind string

const (
	KindExport Kind = "export"
	KindImport Kind = "import"
)

// RunFunc does the actual work of a job. It receives the job's own
// cancellable context and its assigned ID so it can report progress back
// to the store.
type RunFunc func(ctx context.Context, id string) error

// Job is the tracked state of one queued operation. Result fields are
// written by the job's own run function before it finishes; readers get
// value copies from the store.
type Job struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`

	// Progress counters, updated while the job runs.
	Processed int    `json:"processed"`
	Selected  int    `json:"selected"`
	LastFile  string `json:"lastFile,omitempty"`

	LastError string `json:"lastError,omitempty"`

	Summary *domain.BatchSummary `json:"summary,omitempty"`
	Export  *export.Result       `json:"export,omitempty"`

	run RunFunc
}
