package voucher

import (
	"time"

	"dashboard/internal/entities"
)

const (
	maxCodeLength = 32
	maxPercent    = 100
)

// isValidCode accepts codes like SALE-10 or FREESHIP_2026.
func isValidCode(code string) bool {
	if code == "" || len(code) > maxCodeLength {
		return false
	}

	for _, char := range code {
		switch {
		case char >= 'A' && char <= 'Z':
		case char >= '0' && char <= '9':
		case char == '-' || char == '_':
		default:
			return false
		}
	}
	return true
}

func isValidType(voucherType entities.VoucherType) bool {
	switch voucherType {
	case entities.VoucherPercent, entities.VoucherFixed:
		return true
	default:
		return false
	}
}

func isValidValue(voucherType entities.VoucherType, value int64) bool {
	if voucherType == entities.VoucherPercent {
		return value >= 1 && value <= maxPercent
	}
	return value > 0
}

func isValidPeriod(startsAt, expiresAt time.Time) bool {
	return !startsAt.IsZero() && expiresAt.After(startsAt)
}
