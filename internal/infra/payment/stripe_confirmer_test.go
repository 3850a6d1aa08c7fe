package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradefood/config"
	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfirmer(t *testing.T, handler http.HandlerFunc) service.PaymentConfirmer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewStripeConfirmer(&config.StripeConfig{
		APIURL:    server.URL,
		ReturnURL: "https://shop.tradefood.fr/checkout/return",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStripeConfirmer_Succeeded(t *testing.T) {
	confirmer := newTestConfirmer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123/confirm", r.URL.Path)
		assert.Equal(t, "Bearer pk_test_abc", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "pi_123_secret_xyz", r.PostForm.Get("client_secret"))
		assert.Equal(t, "pm_card_visa", r.PostForm.Get("payment_method"))
		assert.Equal(t, "https://shop.tradefood.fr/checkout/return", r.PostForm.Get("return_url"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_123", "object": "payment_intent", "status": "succeeded"}`))
	})

	result, err := confirmer.ConfirmPayment(context.Background(), &service.ConfirmPaymentInput{
		ClientSecret:    "pi_123_secret_xyz",
		PublishableKey:  "pk_test_abc",
		PaymentMethodID: "pm_card_visa",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", result.PaymentIntentID)
	assert.Equal(t, entity.PaymentIntentSucceeded, result.Status)
	assert.Empty(t, result.NextActionURL)
}

func TestStripeConfirmer_RequiresAction(t *testing.T) {
	confirmer := newTestConfirmer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_123", "object": "payment_intent", "status": "requires_action",
			"next_action": {"type": "redirect_to_url", "redirect_to_url": {"url": "https://hooks.stripe.com/3ds"}}}`))
	})

	result, err := confirmer.ConfirmPayment(context.Background(), &service.ConfirmPaymentInput{
		ClientSecret:    "pi_123_secret_xyz",
		PublishableKey:  "pk_test_abc",
		PaymentMethodID: "pm_card_threeDSecure2Required",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentIntentRequiresAction, result.Status)
	assert.Equal(t, "https://hooks.stripe.com/3ds", result.NextActionURL)
}

func TestStripeConfirmer_CardDeclined(t *testing.T) {
	confirmer := newTestConfirmer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error": {"type": "card_error", "code": "card_declined",
			"message": "Your card was declined."}}`))
	})

	result, err := confirmer.ConfirmPayment(context.Background(), &service.ConfirmPaymentInput{
		ClientSecret:    "pi_123_secret_xyz",
		PublishableKey:  "pk_test_abc",
		PaymentMethodID: "pm_card_chargeDeclined",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentIntentRequiresPaymentMethod, result.Status)
	assert.Equal(t, "Your card was declined.", result.FailureMessage)
	assert.False(t, result.Status.IsSuccessful())
}

func TestStripeConfirmer_APIErrorIsReturned(t *testing.T) {
	confirmer := newTestConfirmer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "No such payment_intent"}}`))
	})

	_, err := confirmer.ConfirmPayment(context.Background(), &service.ConfirmPaymentInput{
		ClientSecret:   "pi_404_secret_xyz",
		PublishableKey: "pk_test_abc",
	})

	assert.Error(t, err)
}

func TestStripeConfirmer_RequiresKey(t *testing.T) {
	confirmer := NewStripeConfirmer(&config.StripeConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := confirmer.ConfirmPayment(context.Background(), &service.ConfirmPaymentInput{ClientSecret: "pi_1_secret_2"})

	assert.Error(t, err)
}

func TestStripeConfirmer_PaymentStatus(t *testing.T) {
	confirmer := newTestConfirmer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		assert.Equal(t, "Bearer pk_test_abc", r.Header.Get("Authorization"))
		assert.Equal(t, "pi_123_secret_xyz", r.URL.Query().Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_123", "object": "payment_intent", "status": "succeeded"}`))
	})

	result, err := confirmer.PaymentStatus(context.Background(), &service.ConfirmPaymentInput{
		ClientSecret:   "pi_123_secret_xyz",
		PublishableKey: "pk_test_abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", result.PaymentIntentID)
	assert.Equal(t, entity.PaymentIntentSucceeded, result.Status)
}

func TestStripeConfirmer_PaymentStatus_AuthenticationFailed(t *testing.T) {
	confirmer := newTestConfirmer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_123", "object": "payment_intent", "status": "requires_payment_method",
			"last_payment_error": {"type": "card_error", "message": "Authentication failed."}}`))
	})

	result, err := confirmer.PaymentStatus(context.Background(), &service.ConfirmPaymentInput{
		ClientSecret:   "pi_123_secret_xyz",
		PublishableKey: "pk_test_abc",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentIntentRequiresPaymentMethod, result.Status)
	assert.Equal(t, "Authentication failed.", result.FailureMessage)
}
