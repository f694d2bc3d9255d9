package voucher

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidVoucherID      = errors.New("invalid voucher id")
	ErrInvalidCode           = errors.New("invalid voucher code")
	ErrInvalidType           = errors.New("invalid voucher type")
	ErrInvalidValue          = errors.New("invalid voucher value")
	ErrInvalidQuantity       = errors.New("invalid voucher quantity")
	ErrInvalidPeriod         = errors.New("invalid voucher period")

	ErrVoucherNotFound = errors.New("voucher not found")
	ErrConflict        = errors.New("voucher code already exists")
)
