package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"dashboard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending goose migrations from fsys through pool. It is
// idempotent: already applied versions are skipped.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, fsys fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		err := db.Close()
		if err != nil {
			log.Warn("failed to close migration connection", logger.NewField("error", err))
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.Info("migration applied",
			logger.NewField("version", result.Source.Version),
			logger.NewField("duration", result.Duration.String()),
		)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info("database schema is up to date", logger.NewField("version", version))

	return nil
}
