package entity

import "strings"

// PaymentSheet is the ephemeral provider session data needed to render the payment form.
// One is fetched per payment attempt and discarded after success or failure.
type PaymentSheet struct {
	PaymentIntent  string `json:"paymentIntent"` // Payment intent client secret.
	EphemeralKey   string `json:"ephemeralKey"`
	Customer       string `json:"customer"`
	PublishableKey string `json:"publishableKey"`
}

// PaymentIntentID derives the intent id from the client secret ("pi_123_secret_abc" -> "pi_123").
func (s PaymentSheet) PaymentIntentID() string {
	id, _, found := strings.Cut(s.PaymentIntent, "_secret_")
	if !found {
		return s.PaymentIntent
	}

	return id
}

// PaymentSheetRequest asks the backend to open a payment session for an order.
type PaymentSheetRequest struct {
	Amount      int64  // Minor currency units.
	Currency    string
	Description string
	UserID      int64
	OrderID     int64
}

// PaymentIntentStatus is the provider status of a payment intent.
type PaymentIntentStatus string

const (
	PaymentIntentSucceeded             PaymentIntentStatus = "succeeded"
	PaymentIntentProcessing            PaymentIntentStatus = "processing"
	PaymentIntentRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentCanceled              PaymentIntentStatus = "canceled"
)

// IsSuccessful reports a status the storefront treats as paid.
func (s PaymentIntentStatus) IsSuccessful() bool {
	return s == PaymentIntentSucceeded || s == PaymentIntentProcessing
}

// PaymentStatus is the backend's view of a payment intent.
type PaymentStatus struct {
	PaymentIntentID string              `json:"paymentIntentId"`
	Status          PaymentIntentStatus `json:"status"`
	OrderID         int64               `json:"orderId,omitempty"`
}
