package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/runtime"
)

func writePayload(t *testing.T, dir, name string, payload []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, payload, 0o644))
	return path
}

func newTestConfig() *Config {
	cfg := New("Plant B")
	cfg.SetLookups(domain.CategoryService, "Piping", "Ventilation")
	cfg.SetLookups(domain.CategoryMaterial, "Copper 15mm", "PVC")
	cfg.SetSupplierGroups(
		SupplierGroup{Name: "Benelux", PriceLists: []string{"PL Standard", "PL Project"}},
		SupplierGroup{Name: "Nordics", PriceLists: []string{"PL Standard", "PL Nordic"}},
	)
	return cfg
}

func TestConfig_Lookups(t *testing.T) {
	cfg := newTestConfig()

	snap, err := cfg.Lookups(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Piping", "Ventilation"}, snap.Names(domain.CategoryService))
	assert.Equal(t, []string{"Benelux", "Nordics"}, snap.Names(domain.CategorySupplierGroup))
	// Price lists merge across groups, shared names appear once
	assert.Equal(t, []string{"PL Standard", "PL Project", "PL Nordic"}, snap.Names(domain.CategoryPriceList))
	assert.Equal(t, 0, snap.Count(domain.CategorySection))
}

func TestConfig_OpenItem_ByPayloadDigest(t *testing.T) {
	cfg := newTestConfig()
	dir := t.TempDir()
	ctx := context.Background()

	payload := []byte("elbow-90-body")
	var refs domain.ReferenceSet
	refs.Set(domain.CategoryMaterial, "Copper 15mm")
	cid := cfg.AddItem(payload, Record{DatabaseID: "DB-0001", References: refs})

	path := writePayload(t, dir, "elbow.itm", payload)

	handle, err := cfg.OpenItem(ctx, path)
	require.NoError(t, err)
	defer handle.Close()

	assert.Equal(t, "DB-0001", handle.DatabaseID())
	assert.Equal(t, cid, handle.CID())

	got, err := handle.References(ctx)
	require.NoError(t, err)
	name, ok := got.Get(domain.CategoryMaterial)
	assert.True(t, ok)
	assert.Equal(t, "Copper 15mm", name)

	// The same bytes under another name carry the same metadata
	copyPath := writePayload(t, dir, "elbow-copy.itm", payload)
	id, err := cfg.ItemIdentity(ctx, copyPath)
	require.NoError(t, err)
	assert.Equal(t, "DB-0001", id)
}

func TestConfig_OpenItem_UnknownPayload(t *testing.T) {
	cfg := newTestConfig()
	dir := t.TempDir()

	path := writePayload(t, dir, "foreign.itm", []byte("bytes from elsewhere"))

	_, err := cfg.OpenItem(context.Background(), path)
	assert.ErrorIs(t, err, runtime.ErrItemUnreadable)

	_, err = cfg.OpenItem(context.Background(), filepath.Join(dir, "missing.itm"))
	assert.ErrorIs(t, err, runtime.ErrItemUnreadable)
}

func TestItemHandle_Rebind(t *testing.T) {
	cfg := newTestConfig()
	dir := t.TempDir()
	ctx := context.Background()

	payload := []byte("tee-body")
	cfg.AddItem(payload, Record{DatabaseID: "DB-0002"})
	path := writePayload(t, dir, "tee.itm", payload)

	handle, err := cfg.OpenItem(ctx, path)
	require.NoError(t, err)
	defer handle.Close()

	// Case differences resolve against the live lookups
	require.NoError(t, handle.Rebind(ctx, domain.CategoryMaterial, "copper 15MM"))

	err = handle.Rebind(ctx, domain.CategoryMaterial, "Titanium")
	assert.ErrorIs(t, err, runtime.ErrNameNotFound)

	err = handle.Rebind(ctx, domain.CategoryService, "Piping")
	assert.ErrorIs(t, err, runtime.ErrNotRebindable)

	require.NoError(t, handle.Save(ctx))

	// Saved bindings stick to this path and store the canonical spelling
	reopened, err := cfg.OpenItem(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	refs, err := reopened.References(ctx)
	require.NoError(t, err)
	name, ok := refs.Get(domain.CategoryMaterial)
	assert.True(t, ok)
	assert.Equal(t, "Copper 15mm", name)
}

func TestItemHandle_BindingsArePerPath(t *testing.T) {
	cfg := newTestConfig()
	dir := t.TempDir()
	ctx := context.Background()

	payload := []byte("valve-body")
	var refs domain.ReferenceSet
	refs.Set(domain.CategoryMaterial, "PVC")
	cfg.AddItem(payload, Record{DatabaseID: "DB-0003", References: refs})

	first := writePayload(t, dir, "valve.itm", payload)
	second := writePayload(t, dir, "valve-copy.itm", payload)

	handle, err := cfg.OpenItem(ctx, first)
	require.NoError(t, err)
	require.NoError(t, handle.Rebind(ctx, domain.CategoryMaterial, "Copper 15mm"))
	require.NoError(t, handle.Save(ctx))
	require.NoError(t, handle.Close())

	other, err := cfg.OpenItem(ctx, second)
	require.NoError(t, err)
	defer other.Close()
	got, err := other.References(ctx)
	require.NoError(t, err)
	name, _ := got.Get(domain.CategoryMaterial)
	assert.Equal(t, "PVC", name, "rebind on one copy must not leak to another")
}

func TestItemHandle_CloseDiscardsPending(t *testing.T) {
	cfg := newTestConfig()
	dir := t.TempDir()
	ctx := context.Background()

	payload := []byte("duct-body")
	cfg.AddItem(payload, Record{DatabaseID: "DB-0004"})
	path := writePayload(t, dir, "duct.itm", payload)

	handle, err := cfg.OpenItem(ctx, path)
	require.NoError(t, err)
	require.NoError(t, handle.Rebind(ctx, domain.CategoryMaterial, "PVC"))
	require.NoError(t, handle.Close())

	err = handle.Save(ctx)
	assert.ErrorContains(t, err, "closed")

	reopened, err := cfg.OpenItem(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	refs, err := reopened.References(ctx)
	require.NoError(t, err)
	_, ok := refs.Get(domain.CategoryMaterial)
	assert.False(t, ok, "unsaved rebinds are discarded on close")
}

func TestItemHandle_ProductList(t *testing.T) {
	cfg := newTestConfig()
	dir := t.TempDir()
	ctx := context.Background()

	weight := 1.25
	payload := []byte("pl-payload")
	cfg.AddItem(payload, Record{
		DatabaseID:    "DB-0005",
		IsProductList: true,
		ProductList: &domain.ProductList{
			Revision: "B",
			Rows: []domain.ProductRow{
				{Name: "Bracket", Alias: "BRK", DatabaseID: "DB-R1", OrderNumber: "A-100", Weight: &weight},
			},
		},
	})
	path := writePayload(t, dir, "brackets.itm", payload)

	handle, err := cfg.OpenItem(ctx, path)
	require.NoError(t, err)
	defer handle.Close()

	pl, err := handle.ProductList(ctx)
	require.NoError(t, err)
	require.NotNil(t, pl)
	assert.Equal(t, "B", pl.Revision)
	require.Len(t, pl.Rows, 1)
	assert.Equal(t, "Bracket", pl.Rows[0].Name)
	require.NotNil(t, pl.Rows[0].Weight)
	assert.Equal(t, 1.25, *pl.Rows[0].Weight)
}
