package stats

import (
	"context"
	"fmt"

	"dashboard/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// AggregateByStatus counts orders and sums their total price per status.
// Statuses without orders are absent from the result.
func (r *Repository) AggregateByStatus(ctx context.Context) ([]entities.StatusAggregate, error) {
	query := `SELECT status, COUNT(*), COALESCE(SUM(total_price), 0)::BIGINT
		FROM orders
		GROUP BY status
		ORDER BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository aggregate error: %w", err)
	}
	defer rows.Close()

	aggregates := make([]entities.StatusAggregate, 0, len(entities.OrderStatuses))
	for rows.Next() {
		var (
			status    string
			aggregate entities.StatusAggregate
		)
		if err := rows.Scan(&status, &aggregate.Count, &aggregate.TotalPrice); err != nil {
			return nil, fmt.Errorf("unexpected stats repository aggregate error: %w", err)
		}
		aggregate.Status = entities.OrderStatusType(status)
		aggregates = append(aggregates, aggregate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository aggregate error: %w", err)
	}

	return aggregates, nil
}
