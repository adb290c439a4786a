package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/testing/leaktest"
)

func startRunner(t *testing.T, store *Store) *Runner {
	t.Helper()
	runner := NewRunner(store)
	runner.Start(context.Background())
	t.Cleanup(runner.Stop)
	return runner
}

func jobStatus(t *testing.T, store *Store, id string) func() Status {
	t.Helper()
	return func() Status {
		j, err := store.Get(id)
		require.NoError(t, err)
		return j.Status
	}
}

func TestRunner_ProcessesQueuedJob(t *testing.T) {
	store := NewStore(10)
	startRunner(t, store)

	id, err := store.Create(KindImport, func(_ context.Context, id string) error {
		store.UpdateProgress(id, 2, 2, "tee.itm")
		return nil
	})
	require.NoError(t, err)

	status := jobStatus(t, store, id)
	require.Eventually(t, func() bool { return status() == StatusSucceeded }, time.Second, 5*time.Millisecond)

	j, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 2, j.Processed)
	assert.Equal(t, "tee.itm", j.LastFile)
	require.NotNil(t, j.StartedAt)
	require.NotNil(t, j.FinishedAt)
}

func TestRunner_FailedJob(t *testing.T) {
	store := NewStore(10)
	startRunner(t, store)

	id, err := store.Create(KindExport, func(context.Context, string) error {
		return errors.New("output folder is read-only")
	})
	require.NoError(t, err)

	status := jobStatus(t, store, id)
	require.Eventually(t, func() bool { return status() == StatusFailed }, time.Second, 5*time.Millisecond)

	j, err := store.Get(id)
	require.NoError(t, err)
	assert.Contains(t, j.LastError, "read-only")
}

func TestRunner_CancelRunningJob(t *testing.T) {
	store := NewStore(10)
	startRunner(t, store)

	id, err := store.Create(KindImport, func(ctx context.Context, _ string) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.NoError(t, err)

	status := jobStatus(t, store, id)
	require.Eventually(t, func() bool { return status() == StatusRunning }, time.Second, 5*time.Millisecond)

	require.NoError(t, store.Cancel(id))
	require.Eventually(t, func() bool { return status() == StatusCanceled }, time.Second, 5*time.Millisecond)
}

func TestRunner_SkipsJobCanceledWhileQueued(t *testing.T) {
	store := NewStore(10)

	var ran atomic.Bool
	canceled, err := store.Create(KindImport, func(context.Context, string) error {
		ran.Store(true)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, store.Cancel(canceled))

	follower, err := store.Create(KindImport, noopRun)
	require.NoError(t, err)

	startRunner(t, store)

	status := jobStatus(t, store, follower)
	require.Eventually(t, func() bool { return status() == StatusSucceeded }, time.Second, 5*time.Millisecond)

	assert.False(t, ran.Load(), "canceled job must never run")
	j, err := store.Get(canceled)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, j.Status)
}

func TestRunner_StopLeavesNoGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	store := NewStore(10)
	runner := NewRunner(store)
	runner.Start(context.Background())

	id, err := store.Create(KindImport, noopRun)
	require.NoError(t, err)

	status := jobStatus(t, store, id)
	require.Eventually(t, func() bool { return status() == StatusSucceeded }, time.Second, 5*time.Millisecond)

	runner.Stop()
	checker.Check(1)
}

func TestRunner_OneJobAtATime(t *testing.T) {
	store := NewStore(10)
	startRunner(t, store)

	release := make(chan struct{})
	first, err := store.Create(KindImport, func(context.Context, string) error {
		<-release
		return nil
	})
	require.NoError(t, err)
	second, err := store.Create(KindImport, noopRun)
	require.NoError(t, err)

	firstStatus := jobStatus(t, store, first)
	require.Eventually(t, func() bool { return firstStatus() == StatusRunning }, time.Second, 5*time.Millisecond)

	j, err := store.Get(second)
	require.NoError(t, err)
	assert.Equal(t, StatusQueued, j.Status, "second job waits for the first")

	close(release)
	secondStatus := jobStatus(t, store, second)
	require.Eventually(t, func() bool { return secondStatus() == StatusSucceeded }, time.Second, 5*time.Millisecond)
}
