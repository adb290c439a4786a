package transfer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fabworks/contentbridge/internal/domain"
)

// Policy tunes transfer behavior per deployment. It is loaded from a
// small JSON file; every field has a working default so the file is
// optional.
type Policy struct {
	Version string `json:"version"`

	// CaseSensitive switches name matching to byte-exact comparison.
	// The default matches names under Unicode case folding.
	CaseSensitive bool `json:"caseSensitive"`

	// ThumbnailExt is the companion image extension.
	ThumbnailExt string `json:"thumbnailExt"`

	// ErrorDisplayLimit caps the error strings on a batch summary.
	ErrorDisplayLimit int `json:"errorDisplayLimit"`
}

const policyVersion = "1"

// DefaultPolicy returns the policy used when no file is configured.
func DefaultPolicy() Policy {
	return Policy{
		Version:           policyVersion,
		CaseSensitive:     false,
		ThumbnailExt:      domain.DefaultThumbnailExt,
		ErrorDisplayLimit: domain.DefaultErrorDisplayLimit,
	}
}

// LoadPolicy reads a policy file. An empty path returns the defaults;
// unset fields fall back to their defaults.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	if policy.Version != policyVersion {
		return Policy{}, fmt.Errorf("unsupported policy version %q in %s", policy.Version, path)
	}
	if policy.ThumbnailExt == "" {
		policy.ThumbnailExt = domain.DefaultThumbnailExt
	}
	if policy.ErrorDisplayLimit <= 0 {
		policy.ErrorDisplayLimit = domain.DefaultErrorDisplayLimit
	}
	return policy, nil
}
