package entities

import "time"

type Voucher struct {
	ID            int64
	Code          string
	Type          VoucherType
	Value         int64
	MinOrderValue int64
	Quantity      int64
	StartsAt      time.Time
	ExpiresAt     time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type VoucherType string

const (
	VoucherPercent VoucherType = "percent"
	VoucherFixed   VoucherType = "fixed"
)

func (t VoucherType) String() string {
	return string(t)
}

type VoucherModify struct {
	ID            *int64
	Code          *string
	Type          *VoucherType
	Value         *int64
	MinOrderValue *int64
	Quantity      *int64
	StartsAt      *time.Time
	ExpiresAt     *time.Time
	Active        *bool
}
