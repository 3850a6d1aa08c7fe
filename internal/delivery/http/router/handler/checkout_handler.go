package handler

import (
	"context"
	"log/slog"

	"tradefood/internal/delivery/http/response"
	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler exposes the checkout wizard. Every step answers with the
// full wizard state so the page can render from a single response.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// ClientRequest selects the client of a sales agent's order.
type ClientRequest struct {
	ClientID int64 `json:"clientId" validate:"required,gt=0"`
}

// AddressRequest selects an address of the book.
type AddressRequest struct {
	AddressID int64 `json:"addressId" validate:"required,gt=0"`
}

// ShippingMethodRequest selects one of the quoted shipping methods.
type ShippingMethodRequest struct {
	MethodID string `json:"methodId" validate:"required"`
}

// ConfirmPaymentRequest carries the payment method collected by Stripe Elements.
type ConfirmPaymentRequest struct {
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
}

type stepFunc func(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

// step runs a wizard transition that takes no input.
func (h *CheckoutHandler) step(c echo.Context, fn stepFunc, message string) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	summary, err := fn(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, summary, message)
}

// GetState returns the wizard with its amounts.
func (h *CheckoutHandler) GetState(c echo.Context) error {
	return h.step(c, h.checkoutUC.State, "")
}

// Start opens a fresh wizard.
func (h *CheckoutHandler) Start(c echo.Context) error {
	return h.step(c, h.checkoutUC.Start, "Checkout started")
}

// SelectClient sets the client a sales agent orders for.
func (h *CheckoutHandler) SelectClient(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid client selection")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.step(c, func(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
		return h.checkoutUC.SelectClient(ctx, sess, req.ClientID)
	}, "Client selected")
}

// SelectBillingAddress picks the invoicing address.
func (h *CheckoutHandler) SelectBillingAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid address selection")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.step(c, func(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
		return h.checkoutUC.SelectBillingAddress(ctx, sess, req.AddressID)
	}, "Billing address selected")
}

// SelectDeliveryAddress picks the delivery address and quotes shipping.
func (h *CheckoutHandler) SelectDeliveryAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid address selection")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.step(c, func(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
		return h.checkoutUC.SelectDeliveryAddress(ctx, sess, req.AddressID)
	}, "Delivery address selected")
}

// ConfirmAddresses moves to the shipping step.
func (h *CheckoutHandler) ConfirmAddresses(c echo.Context) error {
	return h.step(c, h.checkoutUC.ConfirmAddresses, "Addresses confirmed")
}

// SelectShippingMethod picks one of the quoted methods.
func (h *CheckoutHandler) SelectShippingMethod(c echo.Context) error {
	var req ShippingMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid shipping method")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.step(c, func(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
		return h.checkoutUC.SelectShippingMethod(ctx, sess, req.MethodID)
	}, "Shipping method selected")
}

// PlaceOrder creates the order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	return h.step(c, h.checkoutUC.PlaceOrder, "Order created")
}

// PreparePayment opens the payment session.
func (h *CheckoutHandler) PreparePayment(c echo.Context) error {
	return h.step(c, h.checkoutUC.PreparePayment, "Payment ready")
}

// ConfirmPayment confirms and verifies the payment.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid payment confirmation")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.checkoutUC.ConfirmPayment(c.Request().Context(), sess, req.PaymentMethodID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result, "")
}

// CompletePayment settles the payment after the authentication redirect.
func (h *CheckoutHandler) CompletePayment(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	result, err := h.checkoutUC.CompletePayment(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result, "")
}

// Back returns to the previous step.
func (h *CheckoutHandler) Back(c echo.Context) error {
	return h.step(c, h.checkoutUC.Back, "")
}

// Abandon resets the wizard.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	if err := h.checkoutUC.Abandon(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Checkout abandoned")
}
