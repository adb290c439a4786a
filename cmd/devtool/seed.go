package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabworks/contentbridge/internal/database"
	"github.com/fabworks/contentbridge/internal/database/postgres"
	"github.com/fabworks/contentbridge/internal/domain"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed configurations with lookup data (demo, file <path>)"
}

// seedFile is the JSON layout consumed by `seed file`. Price lists ride
// on their supplier groups, not on the lookups map.
type seedFile struct {
	Configuration  string              `json:"configuration"`
	Lookups        map[string][]string `json:"lookups"`
	SupplierGroups []seedSupplierGroup `json:"supplierGroups"`
}

type seedSupplierGroup struct {
	Name       string   `json:"name"`
	PriceLists []string `json:"priceLists"`
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: demo, file <path>")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}

	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	ctx := context.Background()
	pool, err := database.NewPool(ctx, database.PoolConfig{URL: dbURL})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	switch args[0] {
	case "demo":
		return c.runDemoSeed(ctx, pool)
	case "file":
		if len(args) < 2 {
			return fmt.Errorf("usage: seed file <path>")
		}
		return c.runFileSeed(ctx, pool, args[1])
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *SeedCommand) runDemoSeed(ctx context.Context, pool *pgxpool.Pool) error {
	PrintInfo("Seeding demo configurations...")

	seeds := []seedFile{
		{
			Configuration: "Plant A",
			Lookups: map[string][]string{
				string(domain.CategoryService):           {"Piping", "Ventilation"},
				string(domain.CategoryMaterial):          {"Copper 15mm", "Bronze 22", "PVC 110"},
				string(domain.CategorySpecification):     {"DIN 2391", "EN 10255"},
				string(domain.CategorySection):           {"Ground Floor", "Roof"},
				string(domain.CategoryInstallationTimes): {"Standard 2025"},
				string(domain.CategoryFabricationTimes):  {"Workshop A"},
			},
			SupplierGroups: []seedSupplierGroup{
				{Name: "Nordic", PriceLists: []string{"Retail 2025", "Trade 2025"}},
				{Name: "Baltic", PriceLists: []string{"Retail 2025"}},
			},
		},
		{
			Configuration: "Plant B",
			Lookups: map[string][]string{
				string(domain.CategoryService):           {"Piping"},
				string(domain.CategoryMaterial):          {"Copper 15mm", "Steel 12"},
				string(domain.CategorySpecification):     {"DIN 2391"},
				string(domain.CategorySection):           {"Ground Floor"},
				string(domain.CategoryInstallationTimes): {"Standard 2025"},
				string(domain.CategoryFabricationTimes):  {"Workshop B"},
			},
			SupplierGroups: []seedSupplierGroup{
				{Name: "Nordic", PriceLists: []string{"Retail 2025"}},
			},
		},
	}

	for _, seed := range seeds {
		if err := applySeed(ctx, pool, seed); err != nil {
			return err
		}
	}

	PrintSuccess("Demo seed completed successfully")
	return nil
}

func (c *SeedCommand) runFileSeed(ctx context.Context, pool *pgxpool.Pool, path string) error {
	PrintInfo("Seeding from %s...", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	if err := applySeed(ctx, pool, seed); err != nil {
		return err
	}

	PrintSuccess("Seed completed successfully")
	return nil
}

func applySeed(ctx context.Context, pool *pgxpool.Pool, seed seedFile) error {
	if seed.Configuration == "" {
		return fmt.Errorf("seed is missing a configuration name")
	}

	cfg := postgres.NewConfig(pool, seed.Configuration)
	if err := cfg.Ensure(ctx); err != nil {
		return err
	}

	for key, names := range seed.Lookups {
		category, err := domain.ParseCategory(key)
		if err != nil {
			return fmt.Errorf("seed for %s: %w", seed.Configuration, err)
		}
		if category == domain.CategoryPriceList || category == domain.CategorySupplierGroup {
			PrintWarning("Skipping %s lookups, supplier groups own them", category)
			continue
		}
		if err := cfg.ReplaceLookups(ctx, category, names...); err != nil {
			return err
		}
	}

	if len(seed.SupplierGroups) > 0 {
		groups := make([]postgres.SupplierGroup, 0, len(seed.SupplierGroups))
		for _, group := range seed.SupplierGroups {
			groups = append(groups, postgres.SupplierGroup{Name: group.Name, PriceLists: group.PriceLists})
		}
		if err := cfg.ReplaceSupplierGroups(ctx, groups...); err != nil {
			return err
		}
	}

	PrintSuccess("Seeded %s", seed.Configuration)
	return nil
}

// redactPassword hides the password of a connection string for logging.
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}
