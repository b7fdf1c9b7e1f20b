package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_ledger_app/internal/adapters/database/memory"
	"github.com/SscSPs/pos_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/pos_ledger_app/internal/adapters/database/redisstore"
	"github.com/SscSPs/pos_ledger_app/internal/adapters/database/sqlite"
	"github.com/SscSPs/pos_ledger_app/internal/adapters/woocommerce"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/core/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/config"
	"github.com/SscSPs/pos_ledger_app/internal/platform/metrics"
	"github.com/SscSPs/pos_ledger_app/pkg/database"
	"github.com/SscSPs/pos_ledger_app/pkg/printer"
	"github.com/prometheus/client_golang/prometheus"
)

// openStore connects the local store selected by STORE_DRIVER. The returned
// func releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.KVStoreFacade, func(), error) {
	noop := func() {}
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("Using the in-memory store; data is lost on restart")
		return memory.NewKVStore(), noop, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLitePath))
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing sqlite store", slog.String("error", err.Error()))
			}
		}, nil

	case config.StorePostgres:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsPath, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{MaxConns: 4})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewKVStore(pool), pool.Close, nil

	case config.StoreRedis:
		store, err := redisstore.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Redis store connected")
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing redis store", slog.String("error", err.Error()))
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// newCatalog returns the WooCommerce client, or the offline catalog when no store URL is set.
func newCatalog(cfg *config.Config, logger *slog.Logger) (portsrepo.CatalogRepositoryFacade, error) {
	if cfg.WooCommerce.URL == "" {
		logger.Warn("WC_URL not set; the online catalog is unavailable")
		return woocommerce.Offline{}, nil
	}
	client, err := woocommerce.NewClient(
		cfg.WooCommerce.URL,
		cfg.WooCommerce.ConsumerKey,
		cfg.WooCommerce.ConsumerSecret,
		woocommerce.WithHTTPClient(&http.Client{Timeout: cfg.WooCommerce.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating woocommerce client: %w", err)
	}
	return client, nil
}

// buildServices opens the store and wires the service container on it.
func buildServices(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*portssvc.ServiceContainer, func(), error) {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s store: %w", cfg.StoreDriver, err)
	}
	catalog, err := newCatalog(cfg, logger)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	p, err := printer.New(printer.Config{Type: cfg.Printer.Type, USBPath: cfg.Printer.USBPath, Address: cfg.Printer.Address})
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	logger.Info("Receipt printer ready", slog.String("printer", p.Name()))

	repos := &portsrepo.RepositoryProvider{Store: store, Catalog: catalog}
	container, err := services.NewServiceContainer(cfg, repos, metrics.NewPOSMetrics(reg), p)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return container, closeStore, nil
}
