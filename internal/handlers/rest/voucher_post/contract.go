//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_post_test
package voucher_post

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
	CreateVoucher(ctx context.Context, voucherModify entities.VoucherModify) (int64, error)
}
