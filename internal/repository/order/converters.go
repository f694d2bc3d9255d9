package order

import (
	"dashboard/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB, history []StatusHistoryDB) *entities.Order {
	if o == nil {
		return nil
	}

	entries := make([]entities.StatusHistoryEntry, len(history))
	for i, h := range history {
		entries[i] = entities.StatusHistoryEntry{
			Status:    entities.OrderStatusType(h.Status),
			ChangedAt: h.ChangedAt,
		}
	}

	return &entities.Order{
		ID:              o.ID,
		CheckoutEventID: o.CheckoutEventID,
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		Phone:           o.Phone,
		Address:         o.Address,
		Note:            o.Note,
		Items:           ToDomainItems(items),
		TotalPrice:      o.TotalPrice,
		ShippingFee:     o.ShippingFee,
		Discount:        o.Discount,
		PaymentMethod:   entities.PaymentMethodType(o.PaymentMethod),
		Status:          entities.OrderStatusType(o.Status),
		StatusHistory:   entities.NewStatusHistory(entries...),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToDomainItems(itemsDB []OrderItemDB) []entities.OrderItem {
	result := make([]entities.OrderItem, len(itemsDB))
	for i, item := range itemsDB {
		result[i] = entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return result
}

// ToDomainList groups items and history rows by order id.
func ToDomainList(ordersDB []OrderDB, itemsDB []OrderItemDB, historyDB []StatusHistoryDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	itemsByOrder := make(map[string][]OrderItemDB, len(ordersDB))
	for _, item := range itemsDB {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	historyByOrder := make(map[string][]StatusHistoryDB, len(ordersDB))
	for _, h := range historyDB {
		historyByOrder[h.OrderID] = append(historyByOrder[h.OrderID], h)
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB, itemsByOrder[orderDB.ID], historyByOrder[orderDB.ID])
	}
	return result
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	return &OrderModifyDB{
		ID:           orderModify.ID,
		CustomerName: orderModify.CustomerName,
		Email:        orderModify.Email,
		Phone:        orderModify.Phone,
		Address:      orderModify.Address,
		Note:         orderModify.Note,
	}
}
