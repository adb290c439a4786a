package sse

import (
	"log/slog"

	"github.com/fabworks/contentbridge/internal/job"
)

// Notifier forwards job store updates to connected SSE clients. It
// implements job.Observer, so a UI can follow a transfer without
// polling the jobs endpoint.
type Notifier struct {
	hub *Hub
}

// NewNotifier creates a notifier that broadcasts through hub.
func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// JobStatusChanged broadcasts a job.status event.
func (n *Notifier) JobStatusChanged(j job.Job) {
	n.hub.Broadcast(EventTypeJobStatus, JobStatusPayload{
		JobID:     j.ID,
		Kind:      string(j.Kind),
		Status:    string(j.Status),
		LastError: j.LastError,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeJobStatus,
		"job_id", j.ID,
		"status", j.Status)
}

// JobProgress broadcasts a job.progress event.
func (n *Notifier) JobProgress(j job.Job) {
	n.hub.Broadcast(EventTypeJobProgress, JobProgressPayload{
		JobID:     j.ID,
		Processed: j.Processed,
		Selected:  j.Selected,
		LastFile:  j.LastFile,
	})
}
