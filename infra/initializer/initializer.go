// Package initializer builds the shared dependencies of the
// application from its configuration: logger, database, repositories,
// rate cache, provider and converter.
package initializer

import (
	"fmt"

	"github.com/lumeo-app/backend/infra"
	"github.com/lumeo-app/backend/infra/cache"
	"github.com/lumeo-app/backend/infra/provider"
	infrarepo "github.com/lumeo-app/backend/infra/repository"
	"github.com/lumeo-app/backend/pkg/app"
	"github.com/lumeo-app/backend/pkg/config"
	"github.com/lumeo-app/backend/pkg/exchange"
)

// InitializeDependencies builds every shared dependency from cfg. The
// database is migrated and seeded with reference data before the store
// is handed out.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := infra.Seed(db); err != nil {
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	rateCache := cache.NewMemoryRateCache(cfg.ExchangeRateCache.TTL)
	rateSource := provider.NewExchangeRateAPI(cfg.ExchangeRate, logger)
	converter := exchange.NewConverter(rateSource, rateCache, logger)

	return &app.Deps{
		Store:     infrarepo.NewStore(db),
		Converter: converter,
		RateCache: rateCache,
		Logger:    logger,
	}, nil
}
