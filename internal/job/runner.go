package job

import (
	"context"
	"sync"

	"github.com/fabworks/contentbridge/internal/logger"
)

// Runner drains the store queue with a single worker, so import batches
// never run concurrently against a target folder.
type Runner struct {
	store *Store
	wg    sync.WaitGroup
	stop  context.CancelFunc
}

func NewRunner(store *Store) *Runner {
	return &Runner{store: store}
}

// Start launches the worker loop.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.stop = context.WithCancel(ctx)
	r.wg.Add(1)
	go r.worker(ctx)
}

// Stop ends the worker loop and waits for the in-flight job to finish.
func (r *Runner) Stop() {
	if r.stop != nil {
		r.stop()
	}
	r.wg.Wait()
}

func (r *Runner) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		j, err := r.store.Next(ctx)
		if err != nil {
			return
		}
		// Jobs cancelled while still queued are skipped
		if j.Status != StatusQueued {
			continue
		}
		r.process(ctx, j)
	}
}

func (r *Runner) process(ctx context.Context, j Job) {
	log := logger.FromContext(ctx)

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := r.store.SetCancel(j.ID, cancel); err != nil {
		return
	}
	defer r.store.ClearCancel(j.ID)

	if err := r.store.UpdateStatus(j.ID, StatusRunning); err != nil {
		return
	}
	log.Info("job started", "job_id", j.ID, "kind", j.Kind)

	err := j.run(jobCtx, j.ID)
	switch {
	case jobCtx.Err() != nil:
		// Operator cancel or runner shutdown; UpdateStatus is a no-op
		// when Cancel already stamped the job
		r.store.UpdateError(j.ID, jobCtx.Err())
		_ = r.store.UpdateStatus(j.ID, StatusCanceled)
		log.Info("job cancelled", "job_id", j.ID)
	case err != nil:
		r.store.UpdateError(j.ID, err)
		_ = r.store.UpdateStatus(j.ID, StatusFailed)
		log.Error("job failed", "job_id", j.ID, "error", err)
	default:
		_ = r.store.UpdateStatus(j.ID, StatusSucceeded)
		log.Info("job finished", "job_id", j.ID)
	}
}
