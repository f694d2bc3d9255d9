//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_get_test
package voucher_get

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
	GetVoucher(ctx context.Context, id int64) (*entities.Voucher, error)
}
