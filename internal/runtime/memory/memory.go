// Package memory provides a complete in-process implementation of the
// runtime contracts. Item payloads stay opaque byte blobs on disk; the
// configuration recognizes a payload by the SHA-256 of its bytes, so
// copying a payload file carries its metadata to the new location and
// foreign bytes fail to load. Reference bindings are tracked per path, a
// rebind saved on one copy never shows up on another.
package memory

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/naming"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// Record describes one content item known to the configuration.
type Record struct {
	DatabaseID    string
	IsProductList bool
	References    domain.ReferenceSet
	ProductList   *domain.ProductList
}

// SupplierGroup is one supplier group with its own price lists.
type SupplierGroup struct {
	Name       string
	PriceLists []string
}

// Config is an in-memory runtime.Configuration.
type Config struct {
	name string

	mu       sync.RWMutex
	lookups  map[domain.Category][]string
	groups   []SupplierGroup
	items    map[string]itemRecord          // payload digest -> record
	bindings map[string]domain.ReferenceSet // item path -> saved bindings
	nextCID  int
}

type itemRecord struct {
	cid int
	Record
}

func New(name string) *Config {
	return &Config{
		name:     name,
		lookups:  make(map[domain.Category][]string),
		items:    make(map[string]itemRecord),
		bindings: make(map[string]domain.ReferenceSet),
	}
}

func (c *Config) Name() string { return c.name }

// SetLookups replaces the lookup names of one simple category. Price lists
// and supplier groups are derived from SetSupplierGroups instead.
func (c *Config) SetLookups(category domain.Category, names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups[category] = append([]string(nil), names...)
}

// SetSupplierGroups replaces all supplier groups. Group names feed the
// supplier_group category; their price lists are merged into price_list.
func (c *Config) SetSupplierGroups(groups ...SupplierGroup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups = make([]SupplierGroup, 0, len(groups))
	for _, g := range groups {
		c.groups = append(c.groups, SupplierGroup{
			Name:       g.Name,
			PriceLists: append([]string(nil), g.PriceLists...),
		})
	}
}

// AddItem registers a payload under its digest and assigns the next
// positional index. The payload file itself is written by the caller.
func (c *Config) AddItem(payload []byte, rec Record) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cid := c.nextCID
	c.nextCID++
	c.items[digest(payload)] = itemRecord{cid: cid, Record: rec}
	return cid
}

// Lookups snapshots the current lookup names. Price-list names are
// gathered across all supplier groups, first occurrence wins.
func (c *Config) Lookups(ctx context.Context) (*runtime.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make(map[domain.Category][]string, 8)
	for cat, list := range c.lookups {
		names[cat] = append([]string(nil), list...)
	}

	seen := make(map[string]struct{})
	var priceLists, groupNames []string
	for _, g := range c.groups {
		groupNames = append(groupNames, g.Name)
		for _, pl := range g.PriceLists {
			if _, dup := seen[pl]; dup {
				continue
			}
			seen[pl] = struct{}{}
			priceLists = append(priceLists, pl)
		}
	}
	names[domain.CategorySupplierGroup] = groupNames
	names[domain.CategoryPriceList] = priceLists

	return runtime.NewSnapshot(names), nil
}

// OpenItem loads the payload at path and returns a handle over its
// metadata with any previously saved bindings for that path applied.
func (c *Config) OpenItem(ctx context.Context, path string) (runtime.ItemHandle, error) {
	rec, refs, err := c.load(ctx, path)
	if err != nil {
		return nil, err
	}
	return &itemHandle{
		cfg:     c,
		path:    path,
		rec:     rec,
		refs:    refs,
		pending: make(map[domain.Category]string),
	}, nil
}

// ItemIdentity reads the databaseId of the payload at path.
func (c *Config) ItemIdentity(ctx context.Context, path string) (string, error) {
	rec, _, err := c.load(ctx, path)
	if err != nil {
		return "", err
	}
	return rec.DatabaseID, nil
}

func (c *Config) load(ctx context.Context, path string) (itemRecord, domain.ReferenceSet, error) {
	if err := ctx.Err(); err != nil {
		return itemRecord{}, domain.ReferenceSet{}, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return itemRecord{}, domain.ReferenceSet{}, fmt.Errorf("%w: %s: %v", runtime.ErrItemUnreadable, path, err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.items[digest(payload)]
	if !ok {
		return itemRecord{}, domain.ReferenceSet{}, fmt.Errorf("%w: %s: unknown payload", runtime.ErrItemUnreadable, path)
	}

	refs := rec.References
	if saved, ok := c.bindings[path]; ok {
		refs = saved
	}
	return rec, refs, nil
}

// resolveLookup matches name against the live lookup names of category.
func (c *Config) resolveLookup(category domain.Category, name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	switch category {
	case domain.CategoryPriceList:
		for _, g := range c.groups {
			names = append(names, g.PriceLists...)
		}
	case domain.CategorySupplierGroup:
		for _, g := range c.groups {
			names = append(names, g.Name)
		}
	default:
		names = c.lookups[category]
	}
	return naming.NewIndex(names, false).Resolve(name)
}

func (c *Config) saveBindings(path string, refs domain.ReferenceSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[path] = refs
}

func digest(payload []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(payload))
}
