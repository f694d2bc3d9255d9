package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/postgres"
	"dashboard/migrations"
	"dashboard/pkg/logger/zap_adapter"
	"dashboard/pkg/querier"
	"dashboard/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
)

// connect opens one pool per test binary and brings the schema up to date.
// Connection settings come from .env.test through the Makefile.
func connect() *pgxpool.Pool {
	poolOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		testLog := zap_adapter.NewNopAdapter()

		var err error
		pool, err = postgres.NewConnPool(ctx, testLog, cfg)
		if err != nil {
			log.Fatalf("integration database: %v", err)
		}

		err = postgres.Migrate(ctx, testLog, pool, migrations.FS)
		if err != nil {
			log.Fatalf("integration migrations: %v", err)
		}
	})

	return pool
}

func GetQuerier() *querier.Querier {
	return querier.New(connect(), pgxv5.DefaultCtxGetter)
}

func GetTxManager() *tx.Manager {
	return tx.New(connect())
}

func SetupDB(t *testing.T, setupSQL string) {
	t.Helper()

	if setupSQL == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSQL)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_status_history, order_items, orders, vouchers RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
