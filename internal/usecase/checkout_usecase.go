package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// CheckoutUsecase drives the checkout wizard:
// addresses → shipping → summary → payment → completed.
type CheckoutUsecase interface {
	// State returns the wizard with the amounts derived from the cart.
	State(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

	// Start opens a fresh wizard on the addresses step.
	Start(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

	// SelectClient sets the client a sales agent orders for and clears address choices.
	SelectClient(ctx context.Context, sess *state.Session, clientID int64) (*entity.CheckoutSummary, error)

	SelectBillingAddress(ctx context.Context, sess *state.Session, addressID int64) (*entity.CheckoutSummary, error)

	// SelectDeliveryAddress picks the delivery address and quotes shipping for it.
	SelectDeliveryAddress(ctx context.Context, sess *state.Session, addressID int64) (*entity.CheckoutSummary, error)

	// ConfirmAddresses moves to the shipping step. It never creates the order.
	ConfirmAddresses(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

	SelectShippingMethod(ctx context.Context, sess *state.Session, methodID string) (*entity.CheckoutSummary, error)

	// PlaceOrder creates the order and moves to the summary step.
	PlaceOrder(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

	// PreparePayment opens a payment session and moves to the payment step.
	PreparePayment(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

	// ConfirmPayment confirms the payment with the provider and verifies it with the backend.
	ConfirmPayment(ctx context.Context, sess *state.Session, paymentMethodID string) (*entity.PaymentResult, error)

	// CompletePayment settles a payment that required customer action, once the
	// customer is back from the provider's authentication page.
	CompletePayment(ctx context.Context, sess *state.Session) (*entity.PaymentResult, error)

	// Back returns to the previous step.
	Back(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error)

	// Abandon resets the wizard, leaving the cart untouched.
	Abandon(ctx context.Context, sess *state.Session) error
}
