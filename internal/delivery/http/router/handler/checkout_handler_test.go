package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/errors"
	mockUsecase "tradefood/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutHandlerFixture(t *testing.T) (*mockUsecase.MockCheckoutUsecase, func(method, target, body string) *httptest.ResponseRecorder) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: uc, Logger: discardLogger})

	g := api.Group("/checkout")
	g.GET("", h.GetState)
	g.DELETE("", h.Abandon)
	g.POST("/start", h.Start)
	g.POST("/client", h.SelectClient)
	g.POST("/billing-address", h.SelectBillingAddress)
	g.POST("/delivery-address", h.SelectDeliveryAddress)
	g.POST("/confirm-addresses", h.ConfirmAddresses)
	g.POST("/shipping-method", h.SelectShippingMethod)
	g.POST("/order", h.PlaceOrder)
	g.POST("/payment", h.PreparePayment)
	g.POST("/payment/confirm", h.ConfirmPayment)
	g.POST("/payment/complete", h.CompletePayment)
	g.POST("/back", h.Back)

	return uc, func(method, target, body string) *httptest.ResponseRecorder {
		return do(e, method, target, body)
	}
}

func summaryAt(step entity.CheckoutStep) *entity.CheckoutSummary {
	return &entity.CheckoutSummary{
		State:    &entity.CheckoutState{Step: step},
		StepName: step.String(),
	}
}

func TestCheckoutHandler_Steps(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		body      string
		setupMock func(uc *mockUsecase.MockCheckoutUsecase)
		wantStep  entity.CheckoutStep
	}{
		{
			name:   "start",
			target: "/api/checkout/start",
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().Start(mock.Anything, inSession()).Return(summaryAt(entity.CheckoutStepAddresses), nil).Once()
			},
			wantStep: entity.CheckoutStepAddresses,
		},
		{
			name:   "billing address",
			target: "/api/checkout/billing-address",
			body:   `{"addressId":5}`,
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().SelectBillingAddress(mock.Anything, inSession(), int64(5)).Return(summaryAt(entity.CheckoutStepAddresses), nil).Once()
			},
			wantStep: entity.CheckoutStepAddresses,
		},
		{
			name:   "delivery address",
			target: "/api/checkout/delivery-address",
			body:   `{"addressId":6}`,
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().SelectDeliveryAddress(mock.Anything, inSession(), int64(6)).Return(summaryAt(entity.CheckoutStepAddresses), nil).Once()
			},
			wantStep: entity.CheckoutStepAddresses,
		},
		{
			name:   "confirm addresses",
			target: "/api/checkout/confirm-addresses",
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().ConfirmAddresses(mock.Anything, inSession()).Return(summaryAt(entity.CheckoutStepShipping), nil).Once()
			},
			wantStep: entity.CheckoutStepShipping,
		},
		{
			name:   "shipping method",
			target: "/api/checkout/shipping-method",
			body:   `{"methodId":"express"}`,
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().SelectShippingMethod(mock.Anything, inSession(), "express").Return(summaryAt(entity.CheckoutStepShipping), nil).Once()
			},
			wantStep: entity.CheckoutStepShipping,
		},
		{
			name:   "place order",
			target: "/api/checkout/order",
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().PlaceOrder(mock.Anything, inSession()).Return(summaryAt(entity.CheckoutStepSummary), nil).Once()
			},
			wantStep: entity.CheckoutStepSummary,
		},
		{
			name:   "prepare payment",
			target: "/api/checkout/payment",
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().PreparePayment(mock.Anything, inSession()).Return(summaryAt(entity.CheckoutStepPayment), nil).Once()
			},
			wantStep: entity.CheckoutStepPayment,
		},
		{
			name:   "back",
			target: "/api/checkout/back",
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().Back(mock.Anything, inSession()).Return(summaryAt(entity.CheckoutStepSummary), nil).Once()
			},
			wantStep: entity.CheckoutStepSummary,
		},
		{
			name:   "agent client",
			target: "/api/checkout/client",
			body:   `{"clientId":12}`,
			setupMock: func(uc *mockUsecase.MockCheckoutUsecase) {
				uc.EXPECT().SelectClient(mock.Anything, inSession(), int64(12)).Return(summaryAt(entity.CheckoutStepAddresses), nil).Once()
			},
			wantStep: entity.CheckoutStepAddresses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, call := newCheckoutHandlerFixture(t)
			tt.setupMock(uc)

			rec := call(http.MethodPost, tt.target, tt.body)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			env := decode[*entity.CheckoutSummary](t, rec)
			assert.Equal(t, tt.wantStep, env.Data.State.Step)
			assert.Equal(t, tt.wantStep.String(), env.Data.StepName)
		})
	}
}

func TestCheckoutHandler_RejectsMissingInput(t *testing.T) {
	for _, target := range []string{
		"/api/checkout/billing-address",
		"/api/checkout/delivery-address",
		"/api/checkout/shipping-method",
		"/api/checkout/client",
		"/api/checkout/payment/confirm",
	} {
		t.Run(target, func(t *testing.T) {
			_, call := newCheckoutHandlerFixture(t)

			rec := call(http.MethodPost, target, `{}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decode[any](t, rec).Error.Code)
		})
	}
}

func TestCheckoutHandler_WizardErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"wrong step", domainerrors.ErrInvalidCheckoutStep, http.StatusConflict, "INVALID_CHECKOUT_STEP"},
		{"busy", domainerrors.ErrCheckoutBusy, http.StatusConflict, "CHECKOUT_BUSY"},
		{"no addresses", domainerrors.ErrAddressRequired, http.StatusBadRequest, "ADDRESS_REQUIRED"},
		{"order failed", domainerrors.ErrOrderCreationFailed, http.StatusBadGateway, "ORDER_CREATION_FAILED"},
		{"logged out", domainerrors.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, call := newCheckoutHandlerFixture(t)
			uc.EXPECT().PlaceOrder(mock.Anything, inSession()).Return(nil, errors.WithStack(tt.err)).Once()

			rec := call(http.MethodPost, "/api/checkout/order", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode[any](t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestCheckoutHandler_ConfirmPayment(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		uc, call := newCheckoutHandlerFixture(t)
		uc.EXPECT().ConfirmPayment(mock.Anything, inSession(), "pm_card_visa").Return(&entity.PaymentResult{
			OrderID:     42,
			Status:      entity.PaymentIntentSucceeded,
			Verified:    true,
			Completed:   true,
			RedirectURL: "https://shop.example/checkout/success?orderId=42",
		}, nil).Once()

		rec := call(http.MethodPost, "/api/checkout/payment/confirm", `{"paymentMethodId":"pm_card_visa"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode[*entity.PaymentResult](t, rec)
		assert.True(t, env.Data.Completed)
		assert.Equal(t, "https://shop.example/checkout/success?orderId=42", env.Data.RedirectURL)
	})

	t.Run("declined shows the reason", func(t *testing.T) {
		uc, call := newCheckoutHandlerFixture(t)
		uc.EXPECT().ConfirmPayment(mock.Anything, inSession(), "pm_card_declined").
			Return(nil, errors.WithStack(domainerrors.ErrPaymentFailed.WithDetails("Your card was declined."))).Once()

		rec := call(http.MethodPost, "/api/checkout/payment/confirm", `{"paymentMethodId":"pm_card_declined"}`)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		env := decode[any](t, rec)
		assert.Equal(t, "PAYMENT_FAILED", env.Error.Code)
		assert.Equal(t, "Your card was declined.", env.Error.Details)
	})
}

func TestCheckoutHandler_CompletePayment(t *testing.T) {
	t.Run("completed after authentication", func(t *testing.T) {
		uc, call := newCheckoutHandlerFixture(t)
		uc.EXPECT().CompletePayment(mock.Anything, inSession()).Return(&entity.PaymentResult{
			OrderID:   42,
			Status:    entity.PaymentIntentSucceeded,
			Verified:  true,
			Completed: true,
		}, nil).Once()

		rec := call(http.MethodPost, "/api/checkout/payment/complete", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode[*entity.PaymentResult](t, rec)
		assert.True(t, env.Data.Completed)
		assert.Equal(t, int64(42), env.Data.OrderID)
	})

	t.Run("status unavailable", func(t *testing.T) {
		uc, call := newCheckoutHandlerFixture(t)
		uc.EXPECT().CompletePayment(mock.Anything, inSession()).
			Return(nil, errors.Wrap(domainerrors.ErrPaymentVerificationFailed, "stripe unreachable")).Once()

		rec := call(http.MethodPost, "/api/checkout/payment/complete", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		env := decode[any](t, rec)
		assert.Equal(t, "PAYMENT_VERIFICATION_FAILED", env.Error.Code)
	})
}

func TestCheckoutHandler_Abandon(t *testing.T) {
	uc, call := newCheckoutHandlerFixture(t)
	uc.EXPECT().Abandon(mock.Anything, inSession()).Return(nil).Once()

	rec := call(http.MethodDelete, "/api/checkout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
