package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/testing/leaktest"
	"github.com/fabworks/contentbridge/internal/transfer"
)

func testPreview(configuration string) *transfer.Preview {
	return &transfer.Preview{
		Package:             &domain.Package{ConfigurationName: configuration},
		Report:              &domain.ResolutionReport{},
		TargetConfiguration: configuration,
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store := NewStore(4, time.Minute)

	id := store.Put(testPreview("Plant B"))
	require.NotEmpty(t, id)

	preview, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Plant B", preview.TargetConfiguration)

	// Sessions survive repeated reads until they expire
	_, err = store.Get(id)
	assert.NoError(t, err)
}

func TestStore_UnknownSession(t *testing.T) {
	store := NewStore(4, time.Minute)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(4, 20*time.Millisecond)

	id := store.Put(testPreview("Plant B"))
	time.Sleep(60 * time.Millisecond)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(4, time.Minute)

	id := store.Put(testPreview("Plant B"))
	store.Delete(id)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_SizeBoundEvictsOldest(t *testing.T) {
	store := NewStore(2, time.Minute)

	first := store.Put(testPreview("Plant A"))
	second := store.Put(testPreview("Plant B"))
	third := store.Put(testPreview("Plant C"))

	_, err := store.Get(first)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	for _, id := range []string{second, third} {
		_, err := store.Get(id)
		assert.NoError(t, err)
	}
	assert.Equal(t, 2, store.Len())
}

func TestStore_EvictionKeepsMemoryBounded(t *testing.T) {
	store := NewStore(16, time.Minute)

	checker := leaktest.NewMemoryChecker(t)
	for i := 0; i < 10_000; i++ {
		store.Put(testPreview("Plant B"))
	}
	assert.Equal(t, 16, store.Len())
	checker.Check(16)
}
