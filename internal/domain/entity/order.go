package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the backend order status. Unknown values pass through untouched.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is one product line of an order payload.
type OrderLine struct {
	ProductID int64 `json:"productId" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=1"`
}

// OrderDraft is what the storefront submits to create an order.
type OrderDraft struct {
	InvoicingAddressID int64
	DeliveryAddressID  int64
	Items              []OrderLine
	ClientID           *int64 // Set when a sales agent orders for a client.
	ShippingMethodID   string
}

// Order is the little the storefront keeps of a created order.
type Order struct {
	ID          int64           `json:"id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
