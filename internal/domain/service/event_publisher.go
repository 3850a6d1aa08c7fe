package service

import (
	"context"
	"time"
)

// CheckoutEventType names a checkout lifecycle event.
type CheckoutEventType string

const (
	CheckoutEventOrderCreated              CheckoutEventType = "order_created"
	CheckoutEventPaymentSucceeded          CheckoutEventType = "payment_succeeded"
	CheckoutEventPaymentFailed             CheckoutEventType = "payment_failed"
	CheckoutEventPaymentVerificationFailed CheckoutEventType = "payment_verification_failed"
	CheckoutEventAbandoned                 CheckoutEventType = "checkout_abandoned"
)

// CheckoutEvent is published so back-office tooling can follow orders the
// storefront created, including pending orders left behind by abandoned payments.
type CheckoutEvent struct {
	RequestID       string            `json:"request_id,omitempty"` // For distributed tracing
	EventID         string            `json:"event_id"`
	Type            CheckoutEventType `json:"type"`
	SessionID       string            `json:"session_id"`
	UserID          int64             `json:"user_id,omitempty"`
	ClientID        *int64            `json:"client_id,omitempty"`
	OrderID         int64             `json:"order_id,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	Amount          int64             `json:"amount,omitempty"` // Minor currency units.
	Reason          string            `json:"reason,omitempty"`
	OccurredAt      time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckoutEvent publishes a checkout lifecycle event
	PublishCheckoutEvent(ctx context.Context, event *CheckoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
