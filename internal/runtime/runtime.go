// Package runtime defines the contracts for the external collaborators a
// content transfer works against: the fabrication configuration that owns
// lookup entities and content items, and the handles used to load, rebind
// and save individual items. Core packages depend on these interfaces only
// and never construct a concrete runtime themselves.
package runtime

import (
	"context"

	"github.com/fabworks/contentbridge/internal/domain"
)

// Configuration is a named fabrication configuration reachable at runtime.
type Configuration interface {
	// Name returns the configuration's display name, recorded in manifests.
	Name() string

	// Lookups takes a point-in-time snapshot of the configuration's lookup
	// entity names per reference category. Price-list names are gathered
	// across all supplier groups.
	Lookups(ctx context.Context) (*Snapshot, error)

	// OpenItem loads the item payload at path for inspection and
	// rebinding. The caller owns the handle and must Close it.
	OpenItem(ctx context.Context, path string) (ItemHandle, error)

	// ItemIdentity reads the databaseId of the item payload at path
	// without keeping the item open.
	ItemIdentity(ctx context.Context, path string) (string, error)
}

// ItemHandle is one loaded content item. Rebinds accumulate on the handle
// and reach the configuration only on Save.
type ItemHandle interface {
	// DatabaseID returns the configuration-assigned identity string.
	DatabaseID() string

	// CID returns the item's positional index inside its configuration.
	// Manifests record it as provenance; it is never a matching key.
	CID() int

	// References returns the item's reference names as currently bound.
	References(ctx context.Context) (domain.ReferenceSet, error)

	// ProductList returns the item's row inventory, or nil when the item
	// is not a product list.
	ProductList(ctx context.Context) (*domain.ProductList, error)

	// Rebind points one reference category at the lookup entry with the
	// given name. Returns ErrNameNotFound when the configuration has no
	// such entry and ErrNotRebindable for read-only categories.
	Rebind(ctx context.Context, category domain.Category, name string) error

	// Save persists the rebinds applied to this handle.
	Save(ctx context.Context) error

	// Close releases the handle. Rebinds not saved are discarded.
	Close() error
}
