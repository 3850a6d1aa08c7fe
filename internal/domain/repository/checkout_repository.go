package repository

import (
	"context"

	"tradefood/internal/domain/entity"
)

// ShippingRepository quotes shipping methods.
type ShippingRepository interface {
	// CalculateShipping returns the available methods for delivering lines to an address.
	CalculateShipping(ctx context.Context, req *entity.ShippingQuoteRequest) ([]entity.ShippingMethod, error)
}

// OrderRepository creates and lists orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}

// PaymentRepository opens payment sessions and reports their status.
type PaymentRepository interface {
	// CreatePaymentSheet opens a payment session for an order.
	CreatePaymentSheet(ctx context.Context, req *entity.PaymentSheetRequest) (*entity.PaymentSheet, error)

	// VerifyPaymentStatus asks the backend what it knows of a payment intent.
	VerifyPaymentStatus(ctx context.Context, paymentIntentID string) (*entity.PaymentStatus, error)
}
