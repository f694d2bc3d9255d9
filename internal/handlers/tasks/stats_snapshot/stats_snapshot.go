//go:generate mockgen -source=stats_snapshot.go -destination=./stats_snapshot_mocks_test.go -package=stats_snapshot_test
package stats_snapshot

import (
	"context"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type Service interface {
	RefreshSnapshot(ctx context.Context) (*entities.SalesStats, error)
}

// StatsSnapshot keeps the cached sales stats warm so dashboard reads rarely
// hit the aggregate query.
type StatsSnapshot struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatsSnapshot(log logger.Logger, service Service, interval time.Duration) *StatsSnapshot {
	return &StatsSnapshot{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatsSnapshot) TTL() time.Duration {
	return s.interval
}

func (s *StatsSnapshot) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	salesStats, err := s.service.RefreshSnapshot(ctxWithTimeout)
	if err != nil {
		return err
	}

	s.log.With(
		logger.NewField("total_orders", salesStats.TotalOrders),
		logger.NewField("revenue", salesStats.Revenue),
	).Info("stats snapshot refreshed")

	return nil
}

func (s *StatsSnapshot) Info() string {
	return "stats snapshot"
}
