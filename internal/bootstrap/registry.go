package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabworks/contentbridge/internal/config"
	"github.com/fabworks/contentbridge/internal/database/postgres"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/runtime"
	"github.com/fabworks/contentbridge/internal/runtime/memory"
)

// BuildRegistry creates the configuration registry for the application.
// With a database pool the configurations named in the environment are
// registered in the mirror and joined by any configurations already
// known to it. Without a pool each name gets an in-memory configuration
// whose lookups start empty.
func BuildRegistry(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*runtime.Registry, error) {
	registry := runtime.NewRegistry()

	if pool == nil {
		logger.Info(LogMsgRegistryMemory, "configurations", len(cfg.Configurations))
		for _, name := range cfg.Configurations {
			registry.Register(memory.New(name))
			logger.Debug(LogMsgConfigurationAdded, "name", name)
		}
		return registry, nil
	}

	logger.Info(LogMsgRegistryPostgres)

	existing, err := postgres.ListConfigurations(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}

	names := make([]string, 0, len(cfg.Configurations)+len(existing))
	seen := make(map[string]struct{}, cap(names))
	for _, name := range append(append([]string{}, cfg.Configurations...), existing...) {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range names {
		pgCfg := postgres.NewConfig(pool, name)
		if err := pgCfg.Ensure(ctx); err != nil {
			return nil, fmt.Errorf("failed to register configuration %q: %w", name, err)
		}
		registry.Register(pgCfg)
		logger.Debug(LogMsgConfigurationAdded, "name", name)
	}

	return registry, nil
}
