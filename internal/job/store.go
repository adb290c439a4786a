// Package job tracks asynchronous export and import operations: a
// bounded FIFO queue feeding a single runner, with per-job progress and
// cancellation. Records live in memory for the lifetime of the process.
package job

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/export"
	"github.com/fabworks/contentbridge/internal/metrics"
)

// ErrQueueFull is returned when the job queue cannot take another job.
var ErrQueueFull = errors.New("job queue is full")

// ErrJobFinished is returned when cancelling a job that already reached
// a terminal status.
var ErrJobFinished = errors.New("job already finished")

// DefaultQueueSize bounds the number of jobs waiting to run.
const DefaultQueueSize = 100

// Observer receives job updates as they happen. Implementations must
// return quickly and must not call back into the store.
type Observer interface {
	JobStatusChanged(j Job)
	JobProgress(j Job)
}

// Store manages job records and the pending queue.
type Store struct {
	mu       sync.RWMutex
	jobs     map[string]*Job
	queue    chan string
	cancels  map[string]context.CancelFunc
	observer Observer
}

func NewStore(queueSize int) *Store {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Store{
		jobs:    make(map[string]*Job),
		queue:   make(chan string, queueSize),
		cancels: make(map[string]context.CancelFunc),
	}
}

// SetObserver registers the observer notified on job updates. Set it
// before traffic starts; there is no unregister.
func (s *Store) SetObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = o
}

// Create registers a new queued job and enqueues it. The job is not
// created when the queue is full.
func (s *Store) Create(kind Kind, run RunFunc) (string, error) {
	j := &Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    StatusQueued,
		CreatedAt: time.Now().UTC(),
		run:       run,
	}

	select {
	case s.queue <- j.ID:
		s.mu.Lock()
		s.jobs[j.ID] = j
		snap := *j
		obs := s.observer
		s.mu.Unlock()
		if obs != nil {
			obs.JobStatusChanged(snap)
		}
		return j.ID, nil
	default:
		return "", ErrQueueFull
	}
}

// Get returns a snapshot of the job.
func (s *Store) Get(id string) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", domain.ErrJobNotFound, id)
	}
	return *j, nil
}

// List returns snapshots of all jobs, newest first.
func (s *Store) List() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	sort.Slice(out, func(i, k int) bool {
		return out[i].CreatedAt.After(out[k].CreatedAt)
	})
	return out
}

// UpdateStatus moves a job to status and stamps the transition times.
// A job already in a terminal state is left untouched, so a cancel that
// raced the runner wins.
func (s *Store) UpdateStatus(id string, status Status) error {
	s.mu.Lock()

	j, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrJobNotFound, id)
	}
	if j.Status.Terminal() {
		s.mu.Unlock()
		return nil
	}

	j.Status = status
	now := time.Now().UTC()
	switch {
	case status == StatusRunning:
		if j.StartedAt == nil {
			j.StartedAt = &now
		}
	case status.Terminal():
		j.FinishedAt = &now
		metrics.TransferJobs.WithLabelValues(string(status)).Inc()
	}
	snap := *j
	obs := s.observer
	s.mu.Unlock()

	if obs != nil {
		obs.JobStatusChanged(snap)
	}
	return nil
}

// UpdateProgress records how far a running job has come.
func (s *Store) UpdateProgress(id string, processed, selected int, lastFile string) {
	s.mu.Lock()

	j, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	j.Processed = processed
	j.Selected = selected
	j.LastFile = lastFile
	snap := *j
	obs := s.observer
	s.mu.Unlock()

	if obs != nil {
		obs.JobProgress(snap)
	}
}

// UpdateError records the job's last error message.
func (s *Store) UpdateError(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return
	}
	if err != nil {
		j.LastError = err.Error()
	} else {
		j.LastError = ""
	}
}

// SetSummary attaches the batch outcome of an import job.
func (s *Store) SetSummary(id string, summary *domain.BatchSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[id]; ok {
		j.Summary = summary
	}
}

// SetExport attaches the outcome of an export job.
func (s *Store) SetExport(id string, result *export.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[id]; ok {
		j.Export = result
	}
}

// SetCancel registers the cancel function of a job's running context.
func (s *Store) SetCancel(id string, cf context.CancelFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrJobNotFound, id)
	}
	s.cancels[id] = cf
	return nil
}

// ClearCancel drops a job's cancel function once it finished.
func (s *Store) ClearCancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cancels, id)
}

// Cancel requests cancellation of a queued or running job. A queued job
// turns canceled immediately and is skipped when dequeued; a running job
// has its context cancelled and stops between items.
func (s *Store) Cancel(id string) error {
	var cf context.CancelFunc

	s.mu.Lock()
	j, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrJobNotFound, id)
	}
	if j.Status.Terminal() {
		status := j.Status
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrJobFinished, status)
	}

	cf = s.cancels[id]
	j.Status = StatusCanceled
	now := time.Now().UTC()
	j.FinishedAt = &now
	metrics.TransferJobs.WithLabelValues(string(StatusCanceled)).Inc()
	snap := *j
	obs := s.observer
	s.mu.Unlock()

	// Cancel outside the lock, the runner updates the store on its way out
	if cf != nil {
		cf()
	}
	if obs != nil {
		obs.JobStatusChanged(snap)
	}
	return nil
}

// Next blocks until a job is queued or the context ends.
func (s *Store) Next(ctx context.Context) (Job, error) {
	for {
		select {
		case id := <-s.queue:
			j, err := s.Get(id)
			if err != nil {
				continue
			}
			return j, nil
		case <-ctx.Done():
			return Job{}, ctx.Err()
		}
	}
}
