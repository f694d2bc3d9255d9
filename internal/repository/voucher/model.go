package voucher

import "time"

type VoucherDB struct {
	ID            int64
	Code          string
	Type          string
	Value         int64
	MinOrderValue int64
	Quantity      int64
	StartsAt      time.Time
	ExpiresAt     time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type VoucherModifyDB struct {
	ID            *int64
	Code          *string
	Type          *string
	Value         *int64
	MinOrderValue *int64
	Quantity      *int64
	StartsAt      *time.Time
	ExpiresAt     *time.Time
	Active        *bool
}
