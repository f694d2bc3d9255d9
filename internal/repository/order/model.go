package order

import "time"

type OrderDB struct {
	ID              string
	CheckoutEventID string
	CustomerName    string
	Email           string
	Phone           string
	Address         string
	Note            string
	TotalPrice      int64
	ShippingFee     int64
	Discount        int64
	PaymentMethod   string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	OrderID   string
	ProductID string
	Name      string
	Image     string
	Size      string
	Quantity  int64
	UnitPrice int64
}

type StatusHistoryDB struct {
	OrderID   string
	Status    string
	ChangedAt time.Time
}

type OrderModifyDB struct {
	ID           *string
	CustomerName *string
	Email        *string
	Phone        *string
	Address      *string
	Note         *string
}
