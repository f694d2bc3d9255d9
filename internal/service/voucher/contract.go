//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_test
package voucher

import (
	"context"

	"dashboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, voucherModify entities.VoucherModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Voucher, error)
	GetAll(ctx context.Context) ([]entities.Voucher, error)
	Update(ctx context.Context, voucherModify entities.VoucherModify) (*entities.Voucher, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
