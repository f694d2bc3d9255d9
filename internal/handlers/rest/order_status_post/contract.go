//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_post_test
package order_status_post

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RequestTransition(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error)
}
