package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/job"
)

func noopRun(context.Context, string) error { return nil }

// jobsRouter mounts the handler the way the server does, so URL
// parameters resolve.
func jobsRouter(store *job.Store) http.Handler {
	h := NewJobsHandler(store)
	r := chi.NewRouter()
	r.Get("/api/v1/jobs", h.HandleList)
	r.Get("/api/v1/jobs/{jobID}", h.HandleGet)
	r.Post("/api/v1/jobs/{jobID}/cancel", h.HandleCancel)
	return r
}

func TestHandleListJobs(t *testing.T) {
	store := job.NewStore(10)
	first, err := store.Create(job.KindExport, noopRun)
	require.NoError(t, err)
	second, err := store.Create(job.KindImport, noopRun)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	w := httptest.NewRecorder()
	jobsRouter(store).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp JobListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, second, resp.Jobs[0].ID, "newest first")
	assert.Equal(t, first, resp.Jobs[1].ID)
}

func TestHandleGetJob(t *testing.T) {
	store := job.NewStore(10)
	id, err := store.Create(job.KindImport, noopRun)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+id, nil)
	w := httptest.NewRecorder()
	jobsRouter(store).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var j job.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &j))
	assert.Equal(t, id, j.ID)
	assert.Equal(t, job.StatusQueued, j.Status)
	assert.Equal(t, job.KindImport, j.Kind)
}

func TestHandleGetJob_Unknown(t *testing.T) {
	store := job.NewStore(10)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/no-such-job", nil)
	w := httptest.NewRecorder()
	jobsRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgJobUnknown)
}

func TestHandleCancelJob(t *testing.T) {
	store := job.NewStore(10)
	id, err := store.Create(job.KindImport, noopRun)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+id+"/cancel", nil)
	w := httptest.NewRecorder()
	jobsRouter(store).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCancellationRequested)

	j, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCanceled, j.Status)

	// A second cancel hits a finished job.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+id+"/cancel", nil)
	w = httptest.NewRecorder()
	jobsRouter(store).ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgJobFinished)
}

func TestHandleCancelJob_Unknown(t *testing.T) {
	store := job.NewStore(10)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/no-such-job/cancel", nil)
	w := httptest.NewRecorder()
	jobsRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgJobUnknown)
}
