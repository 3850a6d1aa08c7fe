package backend

import (
	"context"
	"net/http"
	"net/url"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/repository"
)

var (
	_ repository.ShippingRepository = (*Client)(nil)
	_ repository.OrderRepository    = (*Client)(nil)
	_ repository.PaymentRepository  = (*Client)(nil)
)

type shippingQuoteDTO struct {
	AddressID int64              `json:"addressId"`
	Items     []entity.OrderLine `json:"items"`
}

// orderPayloadDTO is the body of POST /orders. Address ids are numeric.
type orderPayloadDTO struct {
	InvoicingAddressID int64              `json:"invoicingAddressId"`
	DeliveryAddressID  int64              `json:"deliveryAddressId"`
	Items              []entity.OrderLine `json:"items"`
	ClientID           *int64             `json:"clientId,omitempty"`
	ShippingMethodID   string             `json:"shippingMethodId,omitempty"`
}

type paymentSheetRequestDTO struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
	OrderID     int64  `json:"orderId"`
}

// CalculateShipping calls POST /shipping/calculate.
func (c *Client) CalculateShipping(ctx context.Context, req *entity.ShippingQuoteRequest) ([]entity.ShippingMethod, error) {
	var out []entity.ShippingMethod
	body := shippingQuoteDTO{AddressID: req.AddressID, Items: req.Items}
	if err := c.do(ctx, http.MethodPost, "/shipping/calculate", nil, body, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateOrder calls POST /orders.
func (c *Client) CreateOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.Order, error) {
	body := orderPayloadDTO{
		InvoicingAddressID: draft.InvoicingAddressID,
		DeliveryAddressID:  draft.DeliveryAddressID,
		Items:              draft.Items,
		ClientID:           draft.ClientID,
		ShippingMethodID:   draft.ShippingMethodID,
	}

	var out entity.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Status == "" {
		out.Status = entity.OrderStatusPending
	}

	return &out, nil
}

// ListOrders calls GET /orders.
func (c *Client) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreatePaymentSheet calls POST /payments/sheet.
func (c *Client) CreatePaymentSheet(ctx context.Context, req *entity.PaymentSheetRequest) (*entity.PaymentSheet, error) {
	body := paymentSheetRequestDTO{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		UserID:      req.UserID,
		OrderID:     req.OrderID,
	}

	var out entity.PaymentSheet
	if err := c.do(ctx, http.MethodPost, "/payments/sheet", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// VerifyPaymentStatus calls GET /payments/verify-status/{paymentIntentId}.
func (c *Client) VerifyPaymentStatus(ctx context.Context, paymentIntentID string) (*entity.PaymentStatus, error) {
	var out entity.PaymentStatus
	if err := c.do(ctx, http.MethodGet, "/payments/verify-status/"+url.PathEscape(paymentIntentID), nil, nil, &out); err != nil {
		return nil, err
	}
	if out.PaymentIntentID == "" {
		out.PaymentIntentID = paymentIntentID
	}

	return &out, nil
}
