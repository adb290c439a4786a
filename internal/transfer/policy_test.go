package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicy_EmptyPathReturnsDefaults(t *testing.T) {
	policy, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), policy)
}

func TestLoadPolicy_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1","caseSensitive":true,"errorDisplayLimit":3}`), 0o644))

	policy, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.True(t, policy.CaseSensitive)
	assert.Equal(t, 3, policy.ErrorDisplayLimit)
	assert.Equal(t, ".png", policy.ThumbnailExt, "unset fields keep their defaults")
}

func TestLoadPolicy_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"99"}`), 0o644))

	_, err := LoadPolicy(path)
	assert.ErrorContains(t, err, "unsupported policy version")
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadPolicy_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadPolicy(path)
	assert.ErrorContains(t, err, "failed to parse policy file")
}
