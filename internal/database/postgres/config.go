// Package postgres implements the runtime contracts over a PostgreSQL
// mirror of configuration data. Lookup names, supplier groups, item
// records and saved bindings live in the database; item payloads stay
// opaque files on disk, recognized by the SHA-256 of their bytes.
package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

// Config is a runtime.Configuration backed by the database mirror.
type Config struct {
	name string
	db   *pgxpool.Pool
}

func NewConfig(db *pgxpool.Pool, name string) *Config {
	return &Config{name: name, db: db}
}

// ListConfigurations returns every configuration name known to the
// mirror, sorted. Startup uses it to register existing configurations
// alongside the ones named in the environment.
func ListConfigurations(ctx context.Context, db *pgxpool.Pool) ([]string, error) {
	rows, err := db.Query(ctx, SQLSelectConfigurations)
	if err != nil {
		return nil, fmt.Errorf("failed to query configurations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan configuration name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read configurations: %w", err)
	}
	return names, nil
}

func (c *Config) Name() string { return c.name }

// Ensure registers the configuration name in the mirror.
func (c *Config) Ensure(ctx context.Context) error {
	if _, err := c.db.Exec(ctx, SQLEnsureConfiguration, c.name); err != nil {
		return fmt.Errorf("failed to register configuration: %w", err)
	}
	return nil
}

// ReplaceLookups replaces the lookup names of one simple category.
// Price lists and supplier groups are derived from ReplaceSupplierGroups
// instead.
func (c *Config) ReplaceLookups(ctx context.Context, category domain.Category, names ...string) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, SQLDeleteLookups, c.name, string(category)); err != nil {
		return fmt.Errorf("failed to clear lookup entries: %w", err)
	}
	for i, name := range names {
		if _, err := tx.Exec(ctx, SQLInsertLookup, c.name, string(category), name, i); err != nil {
			return fmt.Errorf("failed to insert lookup entry: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// ReplaceSupplierGroups replaces all supplier groups and their price
// lists. Group names feed the supplier_group category; price lists are
// merged into price_list when snapshotting.
func (c *Config) ReplaceSupplierGroups(ctx context.Context, groups ...SupplierGroup) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Dropping the groups cascades to their price lists
	if _, err := tx.Exec(ctx, SQLDeleteSupplierGroups, c.name); err != nil {
		return fmt.Errorf("failed to clear supplier groups: %w", err)
	}
	for gi, group := range groups {
		if _, err := tx.Exec(ctx, SQLInsertSupplierGroup, c.name, group.Name, gi); err != nil {
			return fmt.Errorf("failed to insert supplier group: %w", err)
		}
		for pi, priceList := range group.PriceLists {
			if _, err := tx.Exec(ctx, SQLInsertPriceList, c.name, group.Name, priceList, pi); err != nil {
				return fmt.Errorf("failed to insert price list: %w", err)
			}
		}
	}
	return tx.Commit(ctx)
}

// AddItem registers a payload under its digest and returns the assigned
// positional index. The payload file itself is written by the caller.
func (c *Config) AddItem(ctx context.Context, payload []byte, rec Record) (int, error) {
	refBytes, err := json.Marshal(rec.References)
	if err != nil {
		return 0, fmt.Errorf("failed to encode reference names: %w", err)
	}
	var plBytes []byte
	if rec.ProductList != nil {
		plBytes, err = json.Marshal(rec.ProductList)
		if err != nil {
			return 0, fmt.Errorf("failed to encode product list: %w", err)
		}
	}

	var cid int
	err = c.db.QueryRow(ctx, SQLUpsertItem,
		c.name, digest(payload), rec.DatabaseID, rec.IsProductList, refBytes, plBytes).Scan(&cid)
	if err != nil {
		return 0, fmt.Errorf("failed to register item: %w", err)
	}
	return cid, nil
}

// Lookups snapshots the current lookup names. Price-list names are
// gathered across all supplier groups, first occurrence wins.
func (c *Config) Lookups(ctx context.Context) (*runtime.Snapshot, error) {
	names := make(map[domain.Category][]string, 8)

	rows, err := c.db.Query(ctx, SQLSelectLookups, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup entries: %w", err)
	}
	for rows.Next() {
		var category, name string
		if err := rows.Scan(&category, &name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan lookup entry: %w", err)
		}
		if parsed, err := domain.ParseCategory(category); err == nil {
			names[parsed] = append(names[parsed], name)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lookup entries: %w", err)
	}

	groups, err := c.selectNames(ctx, SQLSelectSupplierGroups, c.name)
	if err != nil {
		return nil, err
	}
	priceLists, err := c.selectNames(ctx, SQLSelectPriceLists, c.name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(priceLists))
	var deduped []string
	for _, priceList := range priceLists {
		if _, dup := seen[priceList]; dup {
			continue
		}
		seen[priceList] = struct{}{}
		deduped = append(deduped, priceList)
	}

	names[domain.CategorySupplierGroup] = groups
	names[domain.CategoryPriceList] = deduped
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
	return rec.databaseID, nil
}

type itemRecord struct {
	cid           int
	databaseID    string
	isProductList bool
	productList   *domain.ProductList
}

func (c *Config) load(ctx context.Context, path string) (itemRecord, domain.ReferenceSet, error) {
	var rec itemRecord
	var refs domain.ReferenceSet

	payload, err := os.ReadFile(path)
	if err != nil {
		return rec, refs, fmt.Errorf("%w: %s: %v", runtime.ErrItemUnreadable, path, err)
	}

	var refBytes, plBytes []byte
	row := c.db.QueryRow(ctx, SQLSelectItem, c.name, digest(payload))
	if err := row.Scan(&rec.cid, &rec.databaseID, &rec.isProductList, &refBytes, &plBytes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rec, refs, fmt.Errorf("%w: %s: unknown payload", runtime.ErrItemUnreadable, path)
		}
		return rec, refs, fmt.Errorf("failed to read item record: %w", err)
	}

	if len(refBytes) > 0 {
		if err := json.Unmarshal(refBytes, &refs); err != nil {
			return rec, refs, fmt.Errorf("failed to decode reference names: %w", err)
		}
	}
	if len(plBytes) > 0 {
		rec.productList = &domain.ProductList{}
		if err := json.Unmarshal(plBytes, rec.productList); err != nil {
			return rec, refs, fmt.Errorf("failed to decode product list: %w", err)
		}
	}

	var savedBytes []byte
	err = c.db.QueryRow(ctx, SQLSelectBindings, c.name, path).Scan(&savedBytes)
	switch {
	case err == nil:
		var saved domain.ReferenceSet
		if err := json.Unmarshal(savedBytes, &saved); err != nil {
			return rec, refs, fmt.Errorf("failed to decode saved bindings: %w", err)
		}
		refs = saved
	case errors.Is(err, pgx.ErrNoRows):
		// no rebinds saved against this path yet
	default:
		return rec, refs, fmt.Errorf("failed to read saved bindings: %w", err)
	}

	return rec, refs, nil
}

// resolveLookup matches name against the live lookup names of category.
func (c *Config) resolveLookup(ctx context.Context, category domain.Category, name string) (string, bool, error) {
	var (
		names []string
		err   error
	)
	switch category {
	case domain.CategoryPriceList:
		names, err = c.selectNames(ctx, SQLSelectPriceLists, c.name)
	case domain.CategorySupplierGroup:
		names, err = c.selectNames(ctx, SQLSelectSupplierGroups, c.name)
	default:
		names, err = c.selectNames(ctx, SQLSelectCategoryNames, c.name, string(category))
	}
	if err != nil {
		return "", false, err
	}

	canonical, ok := naming.NewIndex(names, false).Resolve(name)
	return canonical, ok, nil
}

func (c *Config) saveBindings(ctx context.Context, path string, refs domain.ReferenceSet) error {
	data, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("failed to encode reference names: %w", err)
	}
	if _, err := c.db.Exec(ctx, SQLUpsertBindings, c.name, path, data); err != nil {
		return fmt.Errorf("failed to save bindings: %w", err)
	}
	return nil
}

func (c *Config) selectNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan lookup name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lookup names: %w", err)
	}
	return names, nil
}

func digest(payload []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(payload))
}
