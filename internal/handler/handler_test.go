package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/export"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/manifest"
	"github.com/fabworks/contentbridge/internal/runtime"
	"github.com/fabworks/contentbridge/internal/runtime/memory"
	"github.com/fabworks/contentbridge/internal/session"
	"github.com/fabworks/contentbridge/internal/transfer"
)

// apiFixture wires real services over in-memory configurations, the way
// the server composes them. Only the HTTP layer is under test here, the
// behavior underneath is covered by the service tests.
type apiFixture struct {
	fs       fsops.FS
	source   *memory.Config
	target   *memory.Config
	registry *runtime.Registry
	store    *job.Store
	sessions *session.Store
	svc      transfer.Service

	srcDir string
	pkgDir string
	dstDir string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	InitValidator()

	root := t.TempDir()
	fs := fsops.NewRealFS()

	source := memory.New("Plant A")
	source.SetLookups(domain.CategoryService, "Piping")
	source.SetLookups(domain.CategoryMaterial, "Copper 15mm", "Bronze 22")
	source.SetLookups(domain.CategorySpecification, "DIN 2391")

	target := memory.New("Plant B")
	target.SetLookups(domain.CategoryService, "Piping")
	target.SetLookups(domain.CategoryMaterial, "Copper 15mm", "Steel")
	target.SetLookups(domain.CategorySpecification, "DIN 2391")

	registry := runtime.NewRegistry()
	registry.Register(source)
	registry.Register(target)

	store := job.NewStore(8)
	runner := job.NewRunner(store)
	runner.Start(context.Background())
	t.Cleanup(runner.Stop)

	f := &apiFixture{
		fs:       fs,
		source:   source,
		target:   target,
		registry: registry,
		store:    store,
		sessions: session.NewStore(session.DefaultSize, session.DefaultTTL),
		svc:      transfer.NewService(registry, fs, transfer.DefaultPolicy()),
		srcDir:   filepath.Join(root, "library"),
		pkgDir:   filepath.Join(root, "package"),
		dstDir:   filepath.Join(root, "incoming"),
	}
	require.NoError(t, os.MkdirAll(f.srcDir, 0o755))
	return f
}

// seedItem registers a payload with the source configuration and writes
// it into the library folder. Shared items are registered with the
// target as well.
func (f *apiFixture) seedItem(t *testing.T, name string, payload []byte, rec memory.Record, shared bool) string {
	t.Helper()
	f.source.AddItem(payload, rec)
	if shared {
		f.target.AddItem(payload, rec)
	}
	path := filepath.Join(f.srcDir, name)
	require.NoError(t, os.WriteFile(path, payload, 0o644))
	return path
}

// exportPackage builds the package folder directly, without going
// through the export endpoint.
func (f *apiFixture) exportPackage(t *testing.T, paths ...string) {
	t.Helper()
	svc := export.NewService(f.source, f.fs, manifest.NewWriter(f.fs), "")
	result, err := svc.Export(context.Background(), export.Request{
		ItemPaths:  paths,
		OutputDir:  f.pkgDir,
		ExportedBy: "operator",
	})
	require.NoError(t, err)
	require.Empty(t, result.Skipped)
}

// previewSession runs the preview endpoint and returns the session ID.
func (f *apiFixture) previewSession(t *testing.T) string {
	t.Helper()
	h := NewTransferHandler(f.svc, f.sessions, f.store)
	w := postJSON(t, h.HandlePreview, "/api/v1/imports/preview", PreviewImportRequest{
		PackageDir:          f.pkgDir,
		TargetConfiguration: "Plant B",
		TargetDir:           f.dstDir,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp PreviewImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

// waitJob polls the store until the job reaches a terminal status.
func (f *apiFixture) waitJob(t *testing.T, id string) job.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		j, err := f.store.Get(id)
		require.NoError(t, err)
		if j.Status.Terminal() {
			return j
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s did not finish in time", id)
	return job.Job{}
}

func refsWith(names map[domain.Category]string) domain.ReferenceSet {
	var refs domain.ReferenceSet
	for category, name := range names {
		refs.Set(category, name)
	}
	return refs
}

// postJSON invokes a handler with a JSON body and records the response.
func postJSON(t *testing.T, h http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}
