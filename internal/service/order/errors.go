package order

import "errors"

var (
	// status controller
	ErrInvalidState      = errors.New("order is in a terminal state")
	ErrIllegalTransition = errors.New("illegal order status transition")
	ErrConflict          = errors.New("order was modified concurrently")
	ErrOrderNotFound     = errors.New("order not found")

	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidItems          = errors.New("invalid order items")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidFilter         = errors.New("invalid order filter")
	ErrOrderAlreadyExists    = errors.New("order already exists")
)
