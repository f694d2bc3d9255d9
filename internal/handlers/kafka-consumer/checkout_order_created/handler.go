package checkout_order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dashboard/internal/service/order"
	"dashboard/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "checkout.order.created"),
	)

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or consumer group shutdown
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing returns true when the claim loop must stop. The message
// is left uncommitted in that case and will be delivered again.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad checkout message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("offset", message.Offset),
	)

	created, err := h.orderService.CreateOrder(ctx, event.toOrderCreate())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("checkout processing cancelled, message will be reprocessed")
			return true

		case errors.Is(err, order.ErrOrderAlreadyExists):
			msgLog.Info("checkout event already ingested")

		case isInvalidEvent(err):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("rejected invalid checkout event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to ingest checkout event, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("order", created.ID),
		logger.NewField("items", len(created.Items)),
	).Info("checkout event ingested")

	sess.MarkMessage(message, "")
	return false
}

// isInvalidEvent reports whether redelivering the event can never succeed.
func isInvalidEvent(err error) bool {
	for _, target := range []error{
		order.ErrMissingRequiredFields,
		order.ErrInvalidCustomerName,
		order.ErrInvalidEmail,
		order.ErrInvalidPhone,
		order.ErrInvalidItems,
		order.ErrInvalidPrice,
		order.ErrInvalidPaymentMethod,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
