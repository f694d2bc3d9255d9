package entities

import "time"

type Order struct {
	ID              string
	CheckoutEventID string
	CustomerName    string
	Email           string
	Phone           string
	Address         string
	Note            string
	Items           []OrderItem
	TotalPrice      int64
	ShippingFee     int64
	Discount        int64
	PaymentMethod   PaymentMethodType
	Status          OrderStatusType
	StatusHistory   StatusHistory
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ProductID string
	Name      string
	Image     string
	Size      string
	Quantity  int64
	UnitPrice int64
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipping   OrderStatusType = "shipping"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

// OrderStatuses lists the lifecycle in display order.
var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderProcessing,
	OrderShipping,
	OrderCompleted,
	OrderCancelled,
}

var orderStatusLabels = map[OrderStatusType]string{
	OrderPending:    "Chờ xử lý",
	OrderProcessing: "Đang xử lý",
	OrderShipping:   "Đang giao",
	OrderCompleted:  "Hoàn tất",
	OrderCancelled:  "Đã hủy",
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label is the caption the dashboard shows for the status.
func (s OrderStatusType) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

type PaymentMethodType string

const (
	PaymentCOD          PaymentMethodType = "cod"
	PaymentBankTransfer PaymentMethodType = "bank_transfer"
	PaymentCard         PaymentMethodType = "card"
	PaymentEWallet      PaymentMethodType = "e_wallet"
)

func (p PaymentMethodType) String() string {
	return string(p)
}

type StatusHistoryEntry struct {
	Status    OrderStatusType
	ChangedAt time.Time
}

// StatusHistory is the chronological, append-only record of status changes.
// The zero value is an empty history.
type StatusHistory struct {
	entries []StatusHistoryEntry
}

func NewStatusHistory(entries ...StatusHistoryEntry) StatusHistory {
	copied := make([]StatusHistoryEntry, len(entries))
	copy(copied, entries)
	return StatusHistory{entries: copied}
}

// Append returns a history with entry added at the end. The receiver is
// left untouched, so a failed write never leaks a half-applied history.
func (h StatusHistory) Append(entry StatusHistoryEntry) StatusHistory {
	next := make([]StatusHistoryEntry, len(h.entries), len(h.entries)+1)
	copy(next, h.entries)
	return StatusHistory{entries: append(next, entry)}
}

func (h StatusHistory) Len() int {
	return len(h.entries)
}

func (h StatusHistory) Last() (StatusHistoryEntry, bool) {
	if len(h.entries) == 0 {
		return StatusHistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy in chronological order.
func (h StatusHistory) Entries() []StatusHistoryEntry {
	copied := make([]StatusHistoryEntry, len(h.entries))
	copy(copied, h.entries)
	return copied
}

// OrderModify carries a partial update of the contact fields. Status, items
// and prices are not part of it on purpose: they never change through a
// plain field update.
type OrderModify struct {
	ID           *string
	CustomerName *string
	Email        *string
	Phone        *string
	Address      *string
	Note         *string
}

type OrderCreate struct {
	CheckoutEventID string
	CustomerName    string
	Email           string
	Phone           string
	Address         string
	Note            string
	Items           []OrderItem
	TotalPrice      int64
	ShippingFee     int64
	Discount        int64
	PaymentMethod   PaymentMethodType
	CreatedAt       time.Time
}

type OrderFilter struct {
	Status *OrderStatusType
	Limit  uint64
	Offset uint64
}

// OrderStatusChange is the conditional write issued by the status controller.
type OrderStatusChange struct {
	OrderID        string
	ExpectedStatus OrderStatusType
	Entry          StatusHistoryEntry
}
