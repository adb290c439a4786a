package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/manifest"
	"github.com/fabworks/contentbridge/internal/runtime/memory"
)

type exportFixture struct {
	cfg    *memory.Config
	srcDir string
	outDir string
	svc    Service
	fs     fsops.FS
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	fs := fsops.NewRealFS()
	cfg := memory.New("Plant A")
	cfg.SetLookups(domain.CategoryService, "Piping")
	cfg.SetLookups(domain.CategoryMaterial, "Copper 15mm", "PVC")

	root := t.TempDir()
	f := &exportFixture{
		cfg:    cfg,
		srcDir: filepath.Join(root, "library"),
		outDir: filepath.Join(root, "package"),
		fs:     fs,
	}
	require.NoError(t, os.MkdirAll(f.srcDir, 0o755))
	f.svc = NewService(cfg, fs, manifest.NewWriter(fs), "")
	return f
}

// seedItem registers a payload with the source configuration and writes it
// into the library folder.
func (f *exportFixture) seedItem(t *testing.T, name string, payload []byte, rec memory.Record) string {
	t.Helper()
	f.cfg.AddItem(payload, rec)
	path := filepath.Join(f.srcDir, name)
	require.NoError(t, os.WriteFile(path, payload, 0o644))
	return path
}

func TestExport_WritesPackage(t *testing.T) {
	f := newExportFixture(t)
	ctx := context.Background()

	var refs domain.ReferenceSet
	refs.Set(domain.CategoryService, "Piping")
	refs.Set(domain.CategoryMaterial, "Copper 15mm")
	elbow := f.seedItem(t, "elbow.itm", []byte("elbow-body"), memory.Record{DatabaseID: "DB-1", References: refs})

	list := f.seedItem(t, "brackets.itm", []byte("brackets-body"), memory.Record{
		DatabaseID:    "DB-2",
		IsProductList: true,
		ProductList:   &domain.ProductList{Revision: "A", Rows: []domain.ProductRow{{Name: "Bracket"}}},
	})
	// Companion image for the first item only
	require.NoError(t, os.WriteFile(filepath.Join(f.srcDir, "elbow.png"), []byte("img"), 0o644))

	result, err := f.svc.Export(ctx, Request{
		ItemPaths:  []string{elbow, list},
		OutputDir:  f.outDir,
		ExportedBy: "operator",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Exported)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Warnings)

	// Files landed next to the manifest
	for _, name := range []string{"elbow.itm", "elbow.png", "brackets.itm", domain.ManifestFileName} {
		_, err := os.Stat(filepath.Join(f.outDir, name))
		assert.NoError(t, err, name)
	}

	pkg, warnings, err := manifest.NewLoader(f.fs).Load(f.outDir)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Plant A", pkg.ConfigurationName)
	assert.Equal(t, "operator", pkg.ExportedBy)
	assert.False(t, pkg.ExportedAt.IsZero())
	require.Len(t, pkg.Items, 2)

	first := pkg.Items[0]
	assert.Equal(t, "elbow.itm", first.FileName)
	assert.Equal(t, "DB-1", first.DatabaseID)
	name, ok := first.References.Get(domain.CategoryMaterial)
	assert.True(t, ok)
	assert.Equal(t, "Copper 15mm", name)
	assert.False(t, first.IsProductList)

	second := pkg.Items[1]
	assert.True(t, second.IsProductList)
	require.NotNil(t, second.ProductList)
	assert.Equal(t, "A", second.ProductList.Revision)
}

func TestExport_SkipsUnreadableItem(t *testing.T) {
	f := newExportFixture(t)

	good := f.seedItem(t, "tee.itm", []byte("tee-body"), memory.Record{DatabaseID: "DB-1"})

	// On disk but unknown to the configuration
	foreign := filepath.Join(f.srcDir, "foreign.itm")
	require.NoError(t, os.WriteFile(foreign, []byte("not ours"), 0o644))

	result, err := f.svc.Export(context.Background(), Request{
		ItemPaths: []string{good, foreign},
		OutputDir: f.outDir,
	})
	require.NoError(t, err, "one bad item must not abort the export")
	assert.Equal(t, 1, result.Exported)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, foreign, result.Skipped[0].Path)
	assert.Contains(t, result.Skipped[0].Reason, "open item")

	pkg, _, err := manifest.NewLoader(f.fs).Load(f.outDir)
	require.NoError(t, err)
	require.Len(t, pkg.Items, 1)
	assert.Equal(t, "tee.itm", pkg.Items[0].FileName)
}

func TestExport_DuplicateFileNameSkipped(t *testing.T) {
	f := newExportFixture(t)

	first := f.seedItem(t, "valve.itm", []byte("valve-a"), memory.Record{DatabaseID: "DB-1"})

	otherDir := filepath.Join(f.srcDir, "other")
	require.NoError(t, os.MkdirAll(otherDir, 0o755))
	f.cfg.AddItem([]byte("valve-b"), memory.Record{DatabaseID: "DB-2"})
	second := filepath.Join(otherDir, "valve.itm")
	require.NoError(t, os.WriteFile(second, []byte("valve-b"), 0o644))

	result, err := f.svc.Export(context.Background(), Request{
		ItemPaths: []string{first, second},
		OutputDir: f.outDir,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Exported)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0].Reason, "already exported")
}

func TestExport_EmptySelectionStillWritesManifest(t *testing.T) {
	f := newExportFixture(t)

	result, err := f.svc.Export(context.Background(), Request{OutputDir: f.outDir})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Exported)

	pkg, _, err := manifest.NewLoader(f.fs).Load(f.outDir)
	require.NoError(t, err)
	assert.Empty(t, pkg.Items)
}
