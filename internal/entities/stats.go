package entities

import "time"

type SalesStats struct {
	TotalOrders       int64
	OrdersByStatus    map[OrderStatusType]int64
	Revenue           int64
	AverageOrderValue int64
	GeneratedAt       time.Time
}

// StatusAggregate is one row of the per-status order rollup.
type StatusAggregate struct {
	Status     OrderStatusType
	Count      int64
	TotalPrice int64
}
