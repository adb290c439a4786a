package duplicate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/runtime/memory"
)

func seedTargetFile(t *testing.T, cfg *memory.Config, dir, name string, payload []byte, id string) string {
	t.Helper()
	cfg.AddItem(payload, memory.Record{DatabaseID: id})
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, payload, 0o644))
	return path
}

func TestCheck_ReportsIdentityCollision(t *testing.T) {
	cfg := memory.New("Plant B")
	dir := t.TempDir()

	existingPath := seedTargetFile(t, cfg, dir, "old-elbow.itm", []byte("old-elbow"), "X")

	pkg := &domain.Package{Items: []domain.Item{
		{FileName: "elbow.itm", DatabaseID: "X"},
		{FileName: "tee.itm", DatabaseID: "Y"},
	}}

	conflicts, err := New(fsops.NewRealFS(), "").Check(context.Background(), pkg, cfg, dir)
	require.NoError(t, err)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "elbow.itm", conflicts[0].ImportFileName)
	assert.Equal(t, "X", conflicts[0].DatabaseID)
	assert.Equal(t, existingPath, conflicts[0].ExistingFilePath)
}

func TestCheck_OneConflictPerExistingFile(t *testing.T) {
	cfg := memory.New("Plant B")
	dir := t.TempDir()

	seedTargetFile(t, cfg, dir, "copy-a.itm", []byte("body-a"), "X")
	seedTargetFile(t, cfg, dir, "copy-b.itm", []byte("body-b"), "X")

	pkg := &domain.Package{Items: []domain.Item{{FileName: "elbow.itm", DatabaseID: "X"}}}

	conflicts, err := New(fsops.NewRealFS(), "").Check(context.Background(), pkg, cfg, dir)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}

func TestCheck_SkipsThumbnailsAndUnreadables(t *testing.T) {
	cfg := memory.New("Plant B")
	dir := t.TempDir()

	// A thumbnail and a file the configuration cannot load
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old-elbow.png"), []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("notes"), 0o644))

	pkg := &domain.Package{Items: []domain.Item{{FileName: "elbow.itm", DatabaseID: "X"}}}

	conflicts, err := New(fsops.NewRealFS(), "").Check(context.Background(), pkg, cfg, dir)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheck_MissingTargetFolder(t *testing.T) {
	cfg := memory.New("Plant B")

	pkg := &domain.Package{Items: []domain.Item{{FileName: "elbow.itm", DatabaseID: "X"}}}

	conflicts, err := New(fsops.NewRealFS(), "").Check(context.Background(), pkg, cfg, filepath.Join(t.TempDir(), "not-yet"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheck_NoIdentityNoConflict(t *testing.T) {
	cfg := memory.New("Plant B")
	dir := t.TempDir()

	seedTargetFile(t, cfg, dir, "anon.itm", []byte("anon-body"), "")

	pkg := &domain.Package{Items: []domain.Item{{FileName: "elbow.itm", DatabaseID: ""}}}

	conflicts, err := New(fsops.NewRealFS(), "").Check(context.Background(), pkg, cfg, dir)
	require.NoError(t, err)
	assert.Empty(t, conflicts, "items without identity never collide")
}
