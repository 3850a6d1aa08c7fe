package service

import (
	"context"

	"tradefood/internal/domain/entity"
)

// ConfirmPaymentInput carries what the payment form collected.
type ConfirmPaymentInput struct {
	ClientSecret    string
	PublishableKey  string
	PaymentMethodID string
	ReturnURL       string
}

// ConfirmPaymentResult is the provider's answer to a confirmation.
type ConfirmPaymentResult struct {
	PaymentIntentID string
	Status          entity.PaymentIntentStatus
	NextActionURL   string // Set when Status is requires_action.
	FailureMessage  string // Provider message when the payment was declined.
}

// PaymentConfirmer confirms a payment intent with the payment provider,
// the way the embedded payment form does client-side.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, input *ConfirmPaymentInput) (*ConfirmPaymentResult, error)
	// PaymentStatus reads the intent's current status without confirming it,
	// after the customer comes back from an authentication redirect.
	// PaymentMethodID and ReturnURL are ignored.
	PaymentStatus(ctx context.Context, input *ConfirmPaymentInput) (*ConfirmPaymentResult, error)
}
