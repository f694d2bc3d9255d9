//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type Repository interface {
	AggregateByStatus(ctx context.Context) ([]entities.StatusAggregate, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
