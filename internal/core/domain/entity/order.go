package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. The vocabulary is closed:
// ChangeStatus rejects anything ParseOrderStatus does not know.
type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderAccepted       OrderStatus = "ACCEPTED"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// ParseOrderStatus maps a raw string onto the status vocabulary.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderAccepted, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Terminal reports whether the status normally ends the lifecycle. Only
// consulted when strict transition checking is enabled; by default a
// cancelled order can still be moved.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order is the immutable snapshot produced from a cart. Address and line
// items are copies detached from the live rows; only Status ever changes
// after creation.
type Order struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;index" json:"userId"`
	Reference string          `gorm:"size:36;not null;uniqueIndex" json:"reference"`
	NetAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"netAmount"`
	Address   string          `gorm:"size:512;not null" json:"address"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`

	Products []OrderProduct `gorm:"foreignKey:OrderID" json:"products,omitempty"`
	Events   []OrderEvent   `gorm:"foreignKey:OrderID" json:"events,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderProduct is a line item snapshot: product id and quantity at the time
// the order was placed.
type OrderProduct struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;index" json:"orderId"`
	ProductID int64 `gorm:"not null" json:"productId"`
	Quantity  int   `gorm:"not null" json:"quantity"`
}

// OrderEvent is one row of the append-only status trail. Rows are never
// updated or deleted; cancelling twice appends two CANCELLED events.
type OrderEvent struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64       `gorm:"not null;index" json:"orderId"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
