// Package storage opens the LedgerStore backend selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_book_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/ledger_book_app/internal/adapters/database/redisstore"
	"github.com/SscSPs/ledger_book_app/internal/adapters/filestore"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
	"github.com/SscSPs/ledger_book_app/pkg/database"
)

// Open returns the configured store and a function releasing its resources.
// The pgsql backend applies pending migrations before the pool is opened.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.LedgerStore, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using file storage", slog.String("dir", cfg.DataDir))
		return store, func() {}, nil

	case config.BackendPgsql:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, pgsql.MigrationsFS, pgsql.MigrationsDir, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using PostgreSQL storage")
		return pgsql.NewLedgerStore(pool), func() { database.ClosePgxPool(pool, logger) }, nil

	case config.BackendRedis:
		client := redisstore.NewClient(cfg.RedisAddrs, cfg.RedisPassword, cfg.RedisCluster)
		store := redisstore.New(client, cfg.RedisPrefix)
		if cfg.EnableDBCheck {
			if err := store.Ping(ctx); err != nil {
				_ = store.Close()
				return nil, nil, err
			}
		}
		logger.Info("Using Redis storage", slog.Any("addrs", cfg.RedisAddrs), slog.Bool("cluster", cfg.RedisCluster))
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing Redis client", slog.String("error", err.Error()))
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
