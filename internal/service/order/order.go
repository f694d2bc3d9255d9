package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

// RequestTransition moves the order to target if the transition table allows
// it, appending a history entry in the same conditional write. The caller's
// choice is always re-validated against the stored status.
func (s *Service) RequestTransition(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	current := order.Status
	if err := ValidateTransition(current, target); err != nil {
		StatusTransitionsTotal.WithLabelValues(current.String(), target.String(), resultLabel(err)).Inc()
		return nil, err
	}

	entry := entities.StatusHistoryEntry{
		Status:    target,
		ChangedAt: time.Now().UTC(),
	}

	// the CAS lives in the UPDATE ... WHERE status = expected, read committed is enough
	err = s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		return s.repository.UpdateStatus(ctx, entities.OrderStatusChange{
			OrderID:        orderID,
			ExpectedStatus: current,
			Entry:          entry,
		})
	})
	StatusTransitionsTotal.WithLabelValues(current.String(), target.String(), resultLabel(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("write order status: %w", err)
	}

	order.Status = target
	order.StatusHistory = order.StatusHistory.Append(entry)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var order *entities.Order
	err := s.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repository.GetByID(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, *filter.Status)
	}
	if filter.Limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit must not exceed %d", ErrInvalidFilter, MaxListLimit)
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderContact overwrites the provided contact fields. It never touches
// status, items or prices.
func (s *Service) UpdateOrderContact(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}

	if orderModify.CustomerName == nil &&
		orderModify.Email == nil &&
		orderModify.Phone == nil &&
		orderModify.Address == nil &&
		orderModify.Note == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if orderModify.CustomerName != nil && !isValidName(*orderModify.CustomerName) {
		return nil, ErrInvalidCustomerName
	}
	if orderModify.Email != nil && !isValidEmail(*orderModify.Email) {
		return nil, ErrInvalidEmail
	}
	if orderModify.Phone != nil && !isValidPhone(*orderModify.Phone) {
		return nil, ErrInvalidPhone
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		order, err = s.repository.GetByID(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// CreateOrder stores an order coming from checkout. It starts pending with an
// empty history; only transitions add history entries.
func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if !isValidOrderID(orderCreate.CheckoutEventID) {
		return nil, fmt.Errorf("checkout event id: %w", ErrMissingRequiredFields)
	}
	if !isValidName(orderCreate.CustomerName) {
		return nil, ErrInvalidCustomerName
	}
	if !isValidPhone(orderCreate.Phone) {
		return nil, ErrInvalidPhone
	}
	if orderCreate.Email != "" && !isValidEmail(orderCreate.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidItems(orderCreate.Items) {
		return nil, ErrInvalidItems
	}
	if orderCreate.TotalPrice < 0 || orderCreate.ShippingFee < 0 || orderCreate.Discount < 0 {
		return nil, ErrInvalidPrice
	}
	if !isValidPaymentMethod(orderCreate.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	if orderCreate.CreatedAt.IsZero() {
		orderCreate.CreatedAt = time.Now().UTC()
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.Create(ctx, orderCreate)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		order, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	default:
		return "error"
	}
}
