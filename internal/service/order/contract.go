//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dashboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) error

	// UpdateStatus is a conditional write: the status changes only if it still
	// equals change.ExpectedStatus, and the history entry is appended with it.
	UpdateStatus(ctx context.Context, change entities.OrderStatusChange) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
	DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error
}
