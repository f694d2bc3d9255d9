package order

import (
	"fmt"
	"slices"

	"dashboard/internal/entities"
)

// transitions is the complete table of legal status moves. Advancement is
// strictly one step at a time; cancellation is only possible before the
// parcel leaves the warehouse. A status with an empty row is terminal.
var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:    {entities.OrderProcessing, entities.OrderCancelled},
	entities.OrderProcessing: {entities.OrderShipping, entities.OrderCancelled},
	entities.OrderShipping:   {entities.OrderCompleted},
	entities.OrderCompleted:  {},
	entities.OrderCancelled:  {},
}

func IsTerminal(status entities.OrderStatusType) bool {
	next, ok := transitions[status]
	return ok && len(next) == 0
}

// AllowedTransitions returns the statuses reachable from status in one move.
func AllowedTransitions(status entities.OrderStatusType) []entities.OrderStatusType {
	return slices.Clone(transitions[status])
}

func ValidateTransition(from, to entities.OrderStatusType) error {
	next, ok := transitions[from]
	if !ok {
		return fmt.Errorf("%w: unknown current status %q", ErrInvalidState, from)
	}
	if len(next) == 0 {
		return fmt.Errorf("%w: order is %s", ErrInvalidState, from)
	}
	if !slices.Contains(next, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
