package checkout_order_created

import (
	"time"

	"dashboard/internal/entities"
)

// createdEvent is the payload the storefront publishes once checkout succeeds.
type createdEvent struct {
	EventID       string      `json:"event_id"`
	CustomerName  string      `json:"customer_name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Note          string      `json:"note"`
	Items         []eventItem `json:"items"`
	TotalPrice    int64       `json:"total_price"`
	ShippingFee   int64       `json:"shipping_fee"`
	Discount      int64       `json:"discount"`
	PaymentMethod string      `json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
}

type eventItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

func (e *createdEvent) toOrderCreate() entities.OrderCreate {
	items := make([]entities.OrderItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return entities.OrderCreate{
		CheckoutEventID: e.EventID,
		CustomerName:    e.CustomerName,
		Email:           e.Email,
		Phone:           e.Phone,
		Address:         e.Address,
		Note:            e.Note,
		Items:           items,
		TotalPrice:      e.TotalPrice,
		ShippingFee:     e.ShippingFee,
		Discount:        e.Discount,
		PaymentMethod:   entities.PaymentMethodType(e.PaymentMethod),
		CreatedAt:       e.CreatedAt,
	}
}
