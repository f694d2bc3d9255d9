package order

import (
	"strings"

	"dashboard/internal/entities"
)

const (
	minPhoneDigits = 8
	maxPhoneDigits = 15

	DefaultListLimit = 50
	MaxListLimit     = 200
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return false
	}
	return !strings.Contains(domain, "@")
}

// isValidPhone accepts local (0912345678) and international (+84912345678) forms.
func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < minPhoneDigits || len(phone) > maxPhoneDigits {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCOD, entities.PaymentBankTransfer, entities.PaymentCard, entities.PaymentEWallet:
		return true
	default:
		return false
	}
}

func isValidItems(items []entities.OrderItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 || item.UnitPrice < 0 {
			return false
		}
	}
	return true
}
