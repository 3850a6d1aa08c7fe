// Package payment confirms payment intents with Stripe on behalf of the
// embedded payment form.
package payment

import (
	"context"
	"log/slog"

	"tradefood/config"
	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// stripeConfirmer implements PaymentConfirmer with the Stripe API, authenticating
// with the publishable key like Stripe.js does.
type stripeConfirmer struct {
	backend        stripe.Backend
	publishableKey string
	returnURL      string
	logger         *slog.Logger
}

// NewStripeConfirmer creates a confirmer. cfg.APIURL overrides the Stripe API
// endpoint (tests, stripe-mock); the publishable key is a fallback for sheets
// that do not carry one.
func NewStripeConfirmer(cfg *config.StripeConfig, logger *slog.Logger) service.PaymentConfirmer {
	backendConfig := &stripe.BackendConfig{
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}

	return &stripeConfirmer{
		backend:        stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		publishableKey: cfg.PublishableKey,
		returnURL:      cfg.ReturnURL,
		logger:         logger,
	}
}

// NewPaymentConfirmer is the Fx constructor.
func NewPaymentConfirmer(cfg *config.Config, logger *slog.Logger) service.PaymentConfirmer {
	return NewStripeConfirmer(cfg.Stripe, logger)
}

func (c *stripeConfirmer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// ConfirmPayment confirms the intent behind input.ClientSecret. A declined card
// is not an error: it comes back as requires_payment_method with the provider message.
func (c *stripeConfirmer) ConfirmPayment(ctx context.Context, input *service.ConfirmPaymentInput) (*service.ConfirmPaymentResult, error) {
	intentID := entity.PaymentSheet{PaymentIntent: input.ClientSecret}.PaymentIntentID()

	key, err := c.key(input)
	if err != nil {
		return nil, err
	}

	returnURL := input.ReturnURL
	if returnURL == "" {
		returnURL = c.returnURL
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(input.PaymentMethodID),
	}
	if returnURL != "" {
		params.ReturnURL = stripe.String(returnURL)
	}
	params.Context = ctx
	params.AddExtra("client_secret", input.ClientSecret)

	client := paymentintent.Client{B: c.backend, Key: key}
	intent, err := client.Confirm(intentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			c.log(ctx).Info("Payment declined by provider",
				slog.String("payment_intent_id", intentID),
				slog.String("decline_code", string(stripeErr.Code)),
			)

			return &service.ConfirmPaymentResult{
				PaymentIntentID: intentID,
				Status:          entity.PaymentIntentRequiresPaymentMethod,
				FailureMessage:  stripeErr.Msg,
			}, nil
		}

		return nil, errors.Wrapf(err, "stripe: failed to confirm payment intent %s", intentID)
	}

	c.log(ctx).Info("Payment intent confirmed",
		slog.String("payment_intent_id", intent.ID),
		slog.String("status", string(intent.Status)),
	)

	return resultOf(intent), nil
}

// PaymentStatus retrieves the intent behind input.ClientSecret.
func (c *stripeConfirmer) PaymentStatus(ctx context.Context, input *service.ConfirmPaymentInput) (*service.ConfirmPaymentResult, error) {
	intentID := entity.PaymentSheet{PaymentIntent: input.ClientSecret}.PaymentIntentID()

	key, err := c.key(input)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExtra("client_secret", input.ClientSecret)

	client := paymentintent.Client{B: c.backend, Key: key}
	intent, err := client.Get(intentID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "stripe: failed to retrieve payment intent %s", intentID)
	}

	c.log(ctx).Debug("Payment intent retrieved",
		slog.String("payment_intent_id", intent.ID),
		slog.String("status", string(intent.Status)),
	)

	return resultOf(intent), nil
}

func (c *stripeConfirmer) key(input *service.ConfirmPaymentInput) (string, error) {
	key := input.PublishableKey
	if key == "" {
		key = c.publishableKey
	}
	if key == "" {
		return "", errors.New("stripe publishable key is not configured")
	}

	return key, nil
}

func resultOf(intent *stripe.PaymentIntent) *service.ConfirmPaymentResult {
	result := &service.ConfirmPaymentResult{
		PaymentIntentID: intent.ID,
		Status:          entity.PaymentIntentStatus(intent.Status),
	}
	if intent.NextAction != nil && intent.NextAction.RedirectToURL != nil {
		result.NextActionURL = intent.NextAction.RedirectToURL.URL
	}
	if intent.LastPaymentError != nil {
		result.FailureMessage = intent.LastPaymentError.Msg
	}

	return result
}
