package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/cache"
	"dashboard/pkg/logger"
)

const snapshotKey = "stats:sales"

type snapshot struct {
	TotalOrders       int64            `json:"total_orders"`
	OrdersByStatus    map[string]int64 `json:"orders_by_status"`
	Revenue           int64            `json:"revenue"`
	AverageOrderValue int64            `json:"average_order_value"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

type Stats struct {
	repository Repository
	cache      Cache
	log        serviceLogger
	ttl        time.Duration
	now        func() time.Time
}

func New(repository Repository, cache Cache, log serviceLogger, ttl time.Duration) *Stats {
	return &Stats{
		repository: repository,
		cache:      cache,
		log:        log,
		ttl:        ttl,
		now:        time.Now,
	}
}

// GetSalesStats serves the cached snapshot and recomputes it on a miss. A
// broken cache only costs a recomputation.
func (s *Stats) GetSalesStats(ctx context.Context) (*entities.SalesStats, error) {
	cached, err := s.readSnapshot(ctx)
	if err == nil {
		CacheRequestsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}

	if errors.Is(err, cache.ErrCacheMiss) {
		CacheRequestsTotal.WithLabelValues("miss").Inc()
	} else {
		CacheRequestsTotal.WithLabelValues("error").Inc()
		s.log.Warn("stats snapshot unavailable",
			logger.NewField("error", err),
		)
	}

	return s.RefreshSnapshot(ctx)
}

// RefreshSnapshot recomputes the stats from the store and overwrites the cache.
func (s *Stats) RefreshSnapshot(ctx context.Context) (*entities.SalesStats, error) {
	salesStats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.writeSnapshot(ctx, salesStats); err != nil {
		s.log.Warn("failed to store stats snapshot",
			logger.NewField("error", err),
		)
	}

	return salesStats, nil
}

func (s *Stats) compute(ctx context.Context) (*entities.SalesStats, error) {
	aggregates, err := s.repository.AggregateByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	salesStats := &entities.SalesStats{
		OrdersByStatus: make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses)),
		GeneratedAt:    s.now().UTC(),
	}
	for _, status := range entities.OrderStatuses {
		salesStats.OrdersByStatus[status] = 0
	}

	for _, aggregate := range aggregates {
		if !aggregate.Status.IsValid() {
			s.log.Warn("unknown order status in aggregate",
				logger.NewField("status", aggregate.Status.String()),
			)
			continue
		}

		salesStats.TotalOrders += aggregate.Count
		salesStats.OrdersByStatus[aggregate.Status] += aggregate.Count
		if aggregate.Status == entities.OrderCompleted {
			salesStats.Revenue += aggregate.TotalPrice
		}
	}

	if completed := salesStats.OrdersByStatus[entities.OrderCompleted]; completed > 0 {
		salesStats.AverageOrderValue = salesStats.Revenue / completed
	}

	return salesStats, nil
}

func (s *Stats) readSnapshot(ctx context.Context) (*entities.SalesStats, error) {
	raw, err := s.cache.Get(ctx, snapshotKey)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode stats snapshot: %w", err)
	}

	salesStats := &entities.SalesStats{
		TotalOrders:       snap.TotalOrders,
		OrdersByStatus:    make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses)),
		Revenue:           snap.Revenue,
		AverageOrderValue: snap.AverageOrderValue,
		GeneratedAt:       snap.GeneratedAt,
	}
	for _, status := range entities.OrderStatuses {
		salesStats.OrdersByStatus[status] = snap.OrdersByStatus[status.String()]
	}

	return salesStats, nil
}

func (s *Stats) writeSnapshot(ctx context.Context, salesStats *entities.SalesStats) error {
	snap := snapshot{
		TotalOrders:       salesStats.TotalOrders,
		OrdersByStatus:    make(map[string]int64, len(salesStats.OrdersByStatus)),
		Revenue:           salesStats.Revenue,
		AverageOrderValue: salesStats.AverageOrderValue,
		GeneratedAt:       salesStats.GeneratedAt,
	}
	for status, count := range salesStats.OrdersByStatus {
		snap.OrdersByStatus[status.String()] = count
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode stats snapshot: %w", err)
	}

	return s.cache.Set(ctx, snapshotKey, raw, s.ttl)
}
