package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutStep is a step of the checkout wizard.
type CheckoutStep int

const (
	CheckoutStepAddresses CheckoutStep = iota + 1
	CheckoutStepShipping
	CheckoutStepSummary
	CheckoutStepPayment
	CheckoutStepCompleted
)

// String representation (for logging)
func (s CheckoutStep) String() string {
	switch s {
	case CheckoutStepAddresses:
		return "addresses"
	case CheckoutStepShipping:
		return "shipping"
	case CheckoutStepSummary:
		return "summary"
	case CheckoutStepPayment:
		return "payment"
	case CheckoutStepCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the wizard is finished.
func (s CheckoutStep) IsTerminal() bool {
	return s == CheckoutStepCompleted
}

// CheckoutState is the persisted snapshot of the checkout wizard.
type CheckoutState struct {
	Step                     CheckoutStep     `json:"step"`
	ClientID                 *int64           `json:"clientId,omitempty"`
	BillingAddressID         int64            `json:"billingAddressId,omitempty"`
	DeliveryAddressID        int64            `json:"deliveryAddressId,omitempty"`
	QuotedAddressID          int64            `json:"quotedAddressId,omitempty"` // Delivery address the methods were quoted for.
	ShippingMethods          []ShippingMethod `json:"shippingMethods,omitempty"`
	SelectedShippingMethodID string           `json:"selectedShippingMethodId,omitempty"`
	OrderID                  int64            `json:"orderId,omitempty"`
	OrderCreated             bool             `json:"orderCreated"`
	OrderLines               []OrderLine      `json:"orderLines,omitempty"` // Cart lines the order was placed with.
	OrderSubtotal            decimal.Decimal  `json:"orderSubtotal"`
	PaymentSheet             *PaymentSheet    `json:"paymentSheet,omitempty"`
	AwaitingAction           bool             `json:"awaitingAction,omitempty"` // The provider asked the customer to authenticate.
	UpdatedAt                time.Time        `json:"updatedAt"`
}

// NewCheckoutState returns a wizard positioned on the first step.
func NewCheckoutState() *CheckoutState {
	return &CheckoutState{Step: CheckoutStepAddresses, UpdatedAt: time.Now()}
}

// HasAddresses reports whether both billing and delivery addresses are chosen.
func (s *CheckoutState) HasAddresses() bool {
	return s.BillingAddressID != 0 && s.DeliveryAddressID != 0
}

// SelectedShippingMethod returns the chosen method among the quoted ones.
func (s *CheckoutState) SelectedShippingMethod() (*ShippingMethod, bool) {
	if s.SelectedShippingMethodID == "" {
		return nil, false
	}
	for i := range s.ShippingMethods {
		if s.ShippingMethods[i].ID == s.SelectedShippingMethodID {
			return &s.ShippingMethods[i], true
		}
	}

	return nil, false
}

// ShippingCost returns the cost of the chosen method, zero when none.
func (s *CheckoutState) ShippingCost() decimal.Decimal {
	if method, ok := s.SelectedShippingMethod(); ok {
		return method.Cost
	}

	return decimal.Zero
}

// RecordOrder freezes what was ordered. Later cart changes no longer affect
// the amounts of the wizard.
func (s *CheckoutState) RecordOrder(orderID int64, cart Cart) {
	s.OrderID = orderID
	s.OrderCreated = true
	s.OrderLines = cart.OrderLines()
	s.OrderSubtotal = cart.Total()
}

// Subtotal is the ordered subtotal once the order exists, the cart total before.
func (s *CheckoutState) Subtotal(cart Cart) decimal.Decimal {
	if s.OrderCreated {
		return s.OrderSubtotal
	}

	return cart.Total()
}

// ClearPayment drops the payment session.
func (s *CheckoutState) ClearPayment() {
	s.PaymentSheet = nil
	s.AwaitingAction = false
}

// ClearShipping forgets the quote and the chosen method.
func (s *CheckoutState) ClearShipping() {
	s.QuotedAddressID = 0
	s.ShippingMethods = nil
	s.SelectedShippingMethodID = ""
}

// CheckoutSummary is the state plus the amounts derived from the cart.
type CheckoutSummary struct {
	State        *CheckoutState  `json:"state"`
	StepName     string          `json:"stepName"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Total        decimal.Decimal `json:"total"`
}

// PaymentResult is the outcome of a payment confirmation.
type PaymentResult struct {
	OrderID       int64               `json:"orderId"`
	Status        PaymentIntentStatus `json:"status"`
	Verified      bool                `json:"verified"`
	Completed     bool                `json:"completed"`
	RedirectURL   string              `json:"redirectUrl,omitempty"`   // Success page once completed.
	NextActionURL string              `json:"nextActionUrl,omitempty"` // Provider page for 3-D Secure and the like.
}
