package response

import (
	"encoding/json"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/service/order"
	"dashboard/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, code dto.ErrorCode, err error) {
	JSON(w, log, status, dto.Error{
		Code:    code,
		Message: err.Error(),
	})
}

// Order renders the order together with the moves the dashboard may offer
// from its current status.
func Order(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			ProductId: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	entries := orderEntity.StatusHistory.Entries()
	history := make([]dto.StatusHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, dto.StatusHistoryEntry{
			Status:    entry.Status.String(),
			ChangedAt: entry.ChangedAt,
		})
	}

	next := order.AllowedTransitions(orderEntity.Status)
	allowed := make([]string, 0, len(next))
	for _, status := range next {
		allowed = append(allowed, status.String())
	}

	return dto.Order{
		Id:                 orderEntity.ID,
		CustomerName:       orderEntity.CustomerName,
		Email:              orderEntity.Email,
		Phone:              orderEntity.Phone,
		Address:            orderEntity.Address,
		Note:               orderEntity.Note,
		Items:              items,
		TotalPrice:         orderEntity.TotalPrice,
		ShippingFee:        orderEntity.ShippingFee,
		Discount:           orderEntity.Discount,
		PaymentMethod:      orderEntity.PaymentMethod.String(),
		Status:             orderEntity.Status.String(),
		StatusLabel:        orderEntity.Status.Label(),
		StatusHistory:      history,
		AllowedTransitions: allowed,
		CreatedAt:          orderEntity.CreatedAt,
		UpdatedAt:          orderEntity.UpdatedAt,
	}
}

func Voucher(voucherEntity *entities.Voucher) dto.Voucher {
	return dto.Voucher{
		Id:            voucherEntity.ID,
		Code:          voucherEntity.Code,
		Type:          dto.VoucherType(voucherEntity.Type),
		Value:         voucherEntity.Value,
		MinOrderValue: voucherEntity.MinOrderValue,
		Quantity:      voucherEntity.Quantity,
		StartsAt:      voucherEntity.StartsAt,
		ExpiresAt:     voucherEntity.ExpiresAt,
		Active:        voucherEntity.Active,
		CreatedAt:     voucherEntity.CreatedAt,
		UpdatedAt:     voucherEntity.UpdatedAt,
	}
}
