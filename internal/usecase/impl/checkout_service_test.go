package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"tradefood/config"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/service"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	mockRepo "tradefood/internal/mocks/repository"
	mockService "tradefood/internal/mocks/service"
	mockUsecase "tradefood/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	srv       *checkoutService
	sess      *state.Session
	addresses *mockRepo.MockAddressRepository
	shipping  *mockRepo.MockShippingRepository
	orders    *mockRepo.MockOrderRepository
	payments  *mockRepo.MockPaymentRepository
	confirmer *mockService.MockPaymentConfirmer
	events    []*service.CheckoutEvent
}

func newCheckoutFixture(t *testing.T, user *entity.User, requireVerified bool) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		sess:      newTestSession(t),
		addresses: mockRepo.NewMockAddressRepository(t),
		shipping:  mockRepo.NewMockShippingRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		payments:  mockRepo.NewMockPaymentRepository(t),
		confirmer: mockService.NewMockPaymentConfirmer(t),
	}
	loginAs(t, f.sess, user)

	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, f.sess).Return(user, nil).Maybe()

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCheckoutEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.CheckoutEvent) error {
			f.events = append(f.events, event)

			return nil
		}).Maybe()

	cfg := &config.Config{Checkout: &config.CheckoutConfig{
		Currency:               "eur",
		SuccessURL:             "https://shop.example/checkout/success",
		RequireVerifiedPayment: requireVerified,
		SearchLimit:            8,
	}}
	f.srv = NewCheckoutService(auth, f.addresses, f.shipping, f.orders, f.payments, f.confirmer, publisher, cfg, discardLogger()).(*checkoutService)

	return f
}

func (f *checkoutFixture) eventTypes() []service.CheckoutEventType {
	types := make([]service.CheckoutEventType, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type)
	}

	return types
}

// givenState stores a wizard snapshot as if earlier steps had run.
func (f *checkoutFixture) givenState(t *testing.T, checkout *entity.CheckoutState) {
	t.Helper()
	require.NoError(t, f.sess.Checkout.Save(context.Background(), checkout))
}

func (f *checkoutFixture) currentState(t *testing.T) *entity.CheckoutState {
	t.Helper()
	checkout, err := f.sess.Checkout.Load(context.Background())
	require.NoError(t, err)

	return checkout
}

var (
	standard = entity.ShippingMethod{ID: "standard", Name: "Colissimo", Cost: decimal.RequireFromString("4.90"), EstimatedDays: 3}
	express  = entity.ShippingMethod{ID: "express", Name: "Chronopost", Cost: decimal.RequireFromString("9.90"), EstimatedDays: 1}
)

func defaultAddress(id int64) *entity.CompanyAddress {
	return &entity.CompanyAddress{ID: id, Name: "Siège", AddressLine1: "1 rue de la Paix", PostalCode: "75002", City: "Paris", CountryCode: "FR", IsDefaultAddress: true}
}

// paymentState is a wizard on the payment step for order 42, placed for one
// unit of product 10 at 45.00.
func paymentState() *entity.CheckoutState {
	checkout := entity.NewCheckoutState()
	checkout.Step = entity.CheckoutStepPayment
	checkout.BillingAddressID = 1
	checkout.DeliveryAddressID = 1
	checkout.QuotedAddressID = 1
	checkout.ShippingMethods = []entity.ShippingMethod{standard}
	checkout.SelectedShippingMethodID = standard.ID
	checkout.RecordOrder(42, entity.Cart{Items: []entity.CartItem{{Product: testProduct(10, "45.00"), Quantity: 1}}})
	checkout.PaymentSheet = &entity.PaymentSheet{PaymentIntent: "pi_1_secret_abc", PublishableKey: "pk_test"}

	return checkout
}

func TestCheckoutService_FullFlow(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess,
		entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 2},
		entity.CartItem{Product: testProduct(11, "15.00"), Quantity: 1},
	)
	lines := []entity.OrderLine{{ProductID: 10, Quantity: 2}, {ProductID: 11, Quantity: 1}}

	f.addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).
		Return([]*entity.CompanyAddress{defaultAddress(1)}, nil)
	f.shipping.EXPECT().CalculateShipping(mock.Anything, &entity.ShippingQuoteRequest{AddressID: 1, Items: lines}).
		Return([]entity.ShippingMethod{standard, express}, nil).Once()
	f.orders.EXPECT().CreateOrder(mock.Anything, &entity.OrderDraft{
		InvoicingAddressID: 1,
		DeliveryAddressID:  1,
		Items:              lines,
		ShippingMethodID:   standard.ID,
	}).Return(&entity.Order{ID: 42, Status: entity.OrderStatusPending}, nil).Once()
	f.payments.EXPECT().CreatePaymentSheet(mock.Anything, &entity.PaymentSheetRequest{
		Amount:      3990,
		Currency:    "eur",
		Description: "Commande #42",
		UserID:      customer.ID,
		OrderID:     42,
	}).Return(&entity.PaymentSheet{PaymentIntent: "pi_1_secret_abc", PublishableKey: "pk_test"}, nil).Once()
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, &service.ConfirmPaymentInput{
		ClientSecret:    "pi_1_secret_abc",
		PublishableKey:  "pk_test",
		PaymentMethodID: "pm_card_visa",
	}).Return(&service.ConfirmPaymentResult{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil).Once()
	f.payments.EXPECT().VerifyPaymentStatus(mock.Anything, "pi_1").
		Return(&entity.PaymentStatus{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil).Once()

	summary, err := f.srv.Start(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepAddresses, summary.State.Step)
	assert.Equal(t, "35.00", summary.Subtotal.StringFixed(2))

	_, err = f.srv.SelectBillingAddress(ctx, f.sess, 1)
	require.NoError(t, err)
	summary, err = f.srv.SelectDeliveryAddress(ctx, f.sess, 1)
	require.NoError(t, err)
	assert.Equal(t, standard.ID, summary.State.SelectedShippingMethodID)

	// Same address again: no second quote.
	_, err = f.srv.SelectDeliveryAddress(ctx, f.sess, 1)
	require.NoError(t, err)

	summary, err = f.srv.ConfirmAddresses(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepShipping, summary.State.Step)
	assert.False(t, summary.State.OrderCreated)

	summary, err = f.srv.SelectShippingMethod(ctx, f.sess, standard.ID)
	require.NoError(t, err)
	assert.Equal(t, "39.90", summary.Total.StringFixed(2))

	summary, err = f.srv.PlaceOrder(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepSummary, summary.State.Step)
	assert.Equal(t, int64(42), summary.State.OrderID)

	summary, err = f.srv.PreparePayment(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, summary.State.Step)

	result, err := f.srv.ConfirmPayment(ctx, f.sess, "pm_card_visa")
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.True(t, result.Verified)
	assert.Equal(t, "https://shop.example/checkout/success?orderId=42", result.RedirectURL)

	cart, err := f.sess.Cart.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, entity.CheckoutStepCompleted, f.currentState(t).Step)
	assert.Equal(t, []service.CheckoutEventType{service.CheckoutEventOrderCreated, service.CheckoutEventPaymentSucceeded}, f.eventTypes())
	assert.Equal(t, int64(3990), f.events[1].Amount)
	assert.Equal(t, f.sess.ID, f.events[1].SessionID)
}

func TestCheckoutService_NoOrderWithoutAddresses(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})

	_, err := f.srv.Start(ctx, f.sess)
	require.NoError(t, err)

	_, err = f.srv.ConfirmAddresses(ctx, f.sess)
	assert.ErrorIs(t, err, domainerrors.ErrAddressRequired)

	_, err = f.srv.PlaceOrder(ctx, f.sess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckoutStep)
	assert.Equal(t, entity.CheckoutStepAddresses, f.currentState(t).Step)
}

func TestCheckoutService_StartRequiresCart(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)

	_, err := f.srv.Start(context.Background(), f.sess)

	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_StartRequiresLogin(t *testing.T) {
	sess := newTestSession(t)
	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).
		Return(nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no access token"))
	srv := NewCheckoutService(auth, nil, nil, nil, nil, nil, nil, &config.Config{Checkout: &config.CheckoutConfig{}}, discardLogger())

	_, err := srv.Start(context.Background(), sess)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCheckoutService_AddressRoles(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})
	billingOnly := &entity.CompanyAddress{ID: 2, IsInvoicingAddress: true}
	f.addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).
		Return([]*entity.CompanyAddress{defaultAddress(1), billingOnly}, nil)

	_, err := f.srv.Start(ctx, f.sess)
	require.NoError(t, err)

	_, err = f.srv.SelectDeliveryAddress(ctx, f.sess, 2)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.srv.SelectBillingAddress(ctx, f.sess, 99)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	summary, err := f.srv.SelectBillingAddress(ctx, f.sess, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.State.BillingAddressID)
}

func TestCheckoutService_NoShippingForAddress(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})
	f.addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).
		Return([]*entity.CompanyAddress{defaultAddress(1)}, nil)
	f.shipping.EXPECT().CalculateShipping(mock.Anything, mock.Anything).Return([]entity.ShippingMethod{}, nil)

	_, err := f.srv.Start(ctx, f.sess)
	require.NoError(t, err)

	_, err = f.srv.SelectDeliveryAddress(ctx, f.sess, 1)

	assert.ErrorIs(t, err, domainerrors.ErrShippingUnavailable)
	checkout := f.currentState(t)
	assert.Equal(t, int64(1), checkout.DeliveryAddressID)
	assert.Empty(t, checkout.ShippingMethods)
}

func TestCheckoutService_SelectShippingMethod(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})
	checkout := paymentState()
	checkout.Step = entity.CheckoutStepShipping
	checkout.ShippingMethods = []entity.ShippingMethod{standard, express}
	checkout.OrderCreated, checkout.OrderID, checkout.PaymentSheet = false, 0, nil
	f.givenState(t, checkout)

	summary, err := f.srv.SelectShippingMethod(ctx, f.sess, express.ID)
	require.NoError(t, err)
	assert.Equal(t, "19.90", summary.Total.StringFixed(2))

	_, err = f.srv.SelectShippingMethod(ctx, f.sess, "drone")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, express.ID, f.currentState(t).SelectedShippingMethodID)
}

func TestCheckoutService_PlaceOrderIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})
	checkout := paymentState()
	checkout.Step = entity.CheckoutStepSummary
	checkout.PaymentSheet = nil
	f.givenState(t, checkout)

	summary, err := f.srv.PlaceOrder(ctx, f.sess)

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.State.OrderID)
	assert.Empty(t, f.events)
}

func TestCheckoutService_PlaceOrderFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "backend unreachable", err: unreachable(), wantErr: domainerrors.ErrOrderCreationFailed},
		{name: "backend error", err: rejected(http.StatusInternalServerError), wantErr: domainerrors.ErrOrderCreationFailed},
		{name: "rejected", err: rejected(http.StatusUnprocessableEntity)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newCheckoutFixture(t, customer, false)
			fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})
			checkout := paymentState()
			checkout.Step = entity.CheckoutStepShipping
			checkout.OrderCreated, checkout.OrderID, checkout.PaymentSheet = false, 0, nil
			f.givenState(t, checkout)
			f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := f.srv.PlaceOrder(ctx, f.sess)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Equal(t, http.StatusUnprocessableEntity, backendStatus(err))
			}
			assert.Equal(t, entity.CheckoutStepShipping, f.currentState(t).Step)
			assert.False(t, f.currentState(t).OrderCreated)
		})
	}
}

func TestCheckoutService_AgentOrdersForClient(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, agent, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "12.50"), Quantity: 4})
	clientID := int64(9)
	require.NoError(t, f.sess.Auth.SelectClient(ctx, &clientID))

	f.addresses.EXPECT().ListAddresses(mock.Anything, entity.ClientScope(clientID)).
		Return([]*entity.CompanyAddress{defaultAddress(5)}, nil)
	f.shipping.EXPECT().CalculateShipping(mock.Anything, mock.Anything).Return([]entity.ShippingMethod{standard}, nil).Once()
	f.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(draft *entity.OrderDraft) bool {
		return draft.ClientID != nil && *draft.ClientID == clientID && draft.DeliveryAddressID == 5
	})).Return(&entity.Order{ID: 77}, nil).Once()

	_, err := f.srv.Start(ctx, f.sess)
	require.NoError(t, err)
	_, err = f.srv.SelectBillingAddress(ctx, f.sess, 5)
	require.NoError(t, err)
	_, err = f.srv.SelectDeliveryAddress(ctx, f.sess, 5)
	require.NoError(t, err)
	_, err = f.srv.ConfirmAddresses(ctx, f.sess)
	require.NoError(t, err)

	summary, err := f.srv.PlaceOrder(ctx, f.sess)

	require.NoError(t, err)
	assert.Equal(t, int64(77), summary.State.OrderID)
	require.Len(t, f.events, 1)
	assert.Equal(t, &clientID, f.events[0].ClientID)
}

func TestCheckoutService_AgentNeedsClient(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, agent, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})

	_, err := f.srv.Start(ctx, f.sess)
	require.NoError(t, err)

	_, err = f.srv.SelectBillingAddress(ctx, f.sess, 1)
	assert.ErrorIs(t, err, domainerrors.ErrClientRequired)
}

func TestCheckoutService_SelectClientOnlyForAgents(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)

	_, err := f.srv.SelectClient(context.Background(), f.sess, 9)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentAmount(t *testing.T) {
	tests := []struct {
		price    string
		quantity int
		shipping string
		want     int64
	}{
		{price: "45.00", quantity: 1, shipping: "5.90", want: 5090},
		{price: "19.99", quantity: 3, shipping: "4.99", want: 6496},
		{price: "0.10", quantity: 3, shipping: "0", want: 30},
		{price: "0.335", quantity: 1, shipping: "0", want: 34},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			checkout := entity.NewCheckoutState()
			checkout.ShippingMethods = []entity.ShippingMethod{{ID: "s", Cost: decimal.RequireFromString(tt.shipping)}}
			checkout.SelectedShippingMethodID = "s"
			run := &checkoutRun{
				cart:     entity.Cart{Items: []entity.CartItem{{Product: testProduct(1, tt.price), Quantity: tt.quantity}}},
				checkout: checkout,
			}

			assert.Equal(t, tt.want, paymentAmount(run))
		})
	}
}

func TestCheckoutService_PaymentDeclined(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "45.00"), Quantity: 1})
	f.givenState(t, paymentState())
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).Return(&service.ConfirmPaymentResult{
		PaymentIntentID: "pi_1",
		Status:          entity.PaymentIntentRequiresPaymentMethod,
		FailureMessage:  "Your card was declined.",
	}, nil)

	_, err := f.srv.ConfirmPayment(ctx, f.sess, "pm_card_chargeDeclined")

	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Your card was declined.", appErr.Details())

	checkout := f.currentState(t)
	assert.Equal(t, entity.CheckoutStepSummary, checkout.Step)
	assert.Nil(t, checkout.PaymentSheet)
	assert.True(t, checkout.OrderCreated)

	cart, err := f.sess.Cart.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
	assert.Equal(t, []service.CheckoutEventType{service.CheckoutEventPaymentFailed}, f.eventTypes())
}

func TestCheckoutService_PaymentConfirmerError(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "45.00"), Quantity: 1})
	f.givenState(t, paymentState())
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).Return(nil, errors.New("stripe: connection reset"))

	_, err := f.srv.ConfirmPayment(context.Background(), f.sess, "pm_card_visa")

	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	assert.Equal(t, entity.CheckoutStepSummary, f.currentState(t).Step)
}

func TestCheckoutService_PaymentRequiresAction(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "45.00"), Quantity: 1})
	f.givenState(t, paymentState())
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).Return(&service.ConfirmPaymentResult{
		PaymentIntentID: "pi_1",
		Status:          entity.PaymentIntentRequiresAction,
		NextActionURL:   "https://hooks.stripe.com/3d_secure/authenticate",
	}, nil)

	result, err := f.srv.ConfirmPayment(context.Background(), f.sess, "pm_card_threeDSecure2Required")

	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Equal(t, "https://hooks.stripe.com/3d_secure/authenticate", result.NextActionURL)
	assert.Equal(t, entity.CheckoutStepPayment, f.currentState(t).Step)
	assert.NotNil(t, f.currentState(t).PaymentSheet)
}

func TestCheckoutService_CompleteAfterAuthentication(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "45.00"), Quantity: 1})
	f.givenState(t, paymentState())
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).Return(&service.ConfirmPaymentResult{
		PaymentIntentID: "pi_1",
		Status:          entity.PaymentIntentRequiresAction,
		NextActionURL:   "https://hooks.stripe.com/3d_secure/authenticate",
	}, nil).Once()
	f.confirmer.EXPECT().PaymentStatus(mock.Anything, &service.ConfirmPaymentInput{
		ClientSecret:   "pi_1_secret_abc",
		PublishableKey: "pk_test",
	}).Return(&service.ConfirmPaymentResult{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil).Once()
	f.payments.EXPECT().VerifyPaymentStatus(mock.Anything, "pi_1").
		Return(&entity.PaymentStatus{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil).Once()

	result, err := f.srv.ConfirmPayment(ctx, f.sess, "pm_card_threeDSecure2Required")
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.True(t, f.currentState(t).AwaitingAction)

	// Confirming again while the customer authenticates is refused.
	_, err = f.srv.ConfirmPayment(ctx, f.sess, "pm_card_threeDSecure2Required")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCheckoutStep)

	result, err = f.srv.CompletePayment(ctx, f.sess)
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.True(t, result.Verified)
	assert.Equal(t, int64(42), result.OrderID)

	checkout := f.currentState(t)
	assert.Equal(t, entity.CheckoutStepCompleted, checkout.Step)
	assert.False(t, checkout.AwaitingAction)
	assert.Nil(t, checkout.PaymentSheet)
	cart, err := f.sess.Cart.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, []service.CheckoutEventType{service.CheckoutEventPaymentSucceeded}, f.eventTypes())
	assert.Equal(t, int64(4990), f.events[0].Amount)
}

func TestCheckoutService_CompletePaymentOutcomes(t *testing.T) {
	t.Run("still awaiting authentication", func(t *testing.T) {
		f := newCheckoutFixture(t, customer, false)
		checkout := paymentState()
		checkout.AwaitingAction = true
		f.givenState(t, checkout)
		f.confirmer.EXPECT().PaymentStatus(mock.Anything, mock.Anything).Return(&service.ConfirmPaymentResult{
			PaymentIntentID: "pi_1",
			Status:          entity.PaymentIntentRequiresAction,
			NextActionURL:   "https://hooks.stripe.com/3d_secure/authenticate",
		}, nil)

		result, err := f.srv.CompletePayment(context.Background(), f.sess)

		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Equal(t, "https://hooks.stripe.com/3d_secure/authenticate", result.NextActionURL)
		assert.Equal(t, entity.CheckoutStepPayment, f.currentState(t).Step)
		assert.Empty(t, f.events)
	})

	t.Run("authentication failed", func(t *testing.T) {
		f := newCheckoutFixture(t, customer, false)
		checkout := paymentState()
		checkout.AwaitingAction = true
		f.givenState(t, checkout)
		f.confirmer.EXPECT().PaymentStatus(mock.Anything, mock.Anything).Return(&service.ConfirmPaymentResult{
			PaymentIntentID: "pi_1",
			Status:          entity.PaymentIntentRequiresPaymentMethod,
			FailureMessage:  "Authentication failed.",
		}, nil)

		_, err := f.srv.CompletePayment(context.Background(), f.sess)

		require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
		checkout = f.currentState(t)
		assert.Equal(t, entity.CheckoutStepSummary, checkout.Step)
		assert.False(t, checkout.AwaitingAction)
		assert.Nil(t, checkout.PaymentSheet)
		assert.Equal(t, []service.CheckoutEventType{service.CheckoutEventPaymentFailed}, f.eventTypes())
	})

	t.Run("status lookup error keeps the payment open", func(t *testing.T) {
		f := newCheckoutFixture(t, customer, false)
		checkout := paymentState()
		checkout.AwaitingAction = true
		f.givenState(t, checkout)
		f.confirmer.EXPECT().PaymentStatus(mock.Anything, mock.Anything).Return(nil, errors.New("stripe: connection reset"))

		_, err := f.srv.CompletePayment(context.Background(), f.sess)

		require.ErrorIs(t, err, domainerrors.ErrPaymentVerificationFailed)
		checkout = f.currentState(t)
		assert.Equal(t, entity.CheckoutStepPayment, checkout.Step)
		assert.True(t, checkout.AwaitingAction)
		assert.NotNil(t, checkout.PaymentSheet)
		assert.Empty(t, f.events)
	})

	t.Run("no payment session", func(t *testing.T) {
		f := newCheckoutFixture(t, customer, false)
		checkout := paymentState()
		checkout.Step = entity.CheckoutStepSummary
		checkout.PaymentSheet = nil
		f.givenState(t, checkout)

		_, err := f.srv.CompletePayment(context.Background(), f.sess)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckoutStep)
	})
}

func TestCheckoutService_CartChangedAfterOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess,
		entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 2},
		entity.CartItem{Product: testProduct(11, "15.00"), Quantity: 1},
	)
	checkout := paymentState()
	checkout.Step = entity.CheckoutStepShipping
	checkout.OrderCreated, checkout.OrderID, checkout.OrderLines, checkout.PaymentSheet = false, 0, nil, nil
	f.givenState(t, checkout)

	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(&entity.Order{ID: 42, Status: entity.OrderStatusPending}, nil).Once()
	f.payments.EXPECT().CreatePaymentSheet(mock.Anything, &entity.PaymentSheetRequest{
		Amount:      3990,
		Currency:    "eur",
		Description: "Commande #42",
		UserID:      customer.ID,
		OrderID:     42,
	}).Return(&entity.PaymentSheet{PaymentIntent: "pi_1_secret_abc", PublishableKey: "pk_test"}, nil).Once()
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).
		Return(&service.ConfirmPaymentResult{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil).Once()
	f.payments.EXPECT().VerifyPaymentStatus(mock.Anything, "pi_1").
		Return(&entity.PaymentStatus{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil).Once()

	_, err := f.srv.PlaceOrder(ctx, f.sess)
	require.NoError(t, err)

	fillCart(t, f.sess,
		entity.CartItem{Product: testProduct(12, "100.00"), Quantity: 1},
		entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1},
	)

	summary, err := f.srv.PreparePayment(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, "35.00", summary.Subtotal.StringFixed(2))
	assert.Equal(t, "39.90", summary.Total.StringFixed(2))

	result, err := f.srv.ConfirmPayment(ctx, f.sess, "pm_card_visa")
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, int64(3990), f.events[len(f.events)-1].Amount)

	cart, err := f.sess.Cart.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.OrderLine{{ProductID: 10, Quantity: 1}, {ProductID: 12, Quantity: 1}}, cart.OrderLines())
}

func TestCheckoutService_VerificationFailure(t *testing.T) {
	tests := []struct {
		name            string
		requireVerified bool
	}{
		{name: "accepted when not required", requireVerified: false},
		{name: "fatal when required", requireVerified: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newCheckoutFixture(t, customer, tt.requireVerified)
			fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "45.00"), Quantity: 1})
			f.givenState(t, paymentState())
			f.confirmer.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).
				Return(&service.ConfirmPaymentResult{PaymentIntentID: "pi_1", Status: entity.PaymentIntentSucceeded}, nil)
			f.payments.EXPECT().VerifyPaymentStatus(mock.Anything, "pi_1").Return(nil, unreachable())

			result, err := f.srv.ConfirmPayment(ctx, f.sess, "pm_card_visa")

			if tt.requireVerified {
				require.ErrorIs(t, err, domainerrors.ErrPaymentVerificationFailed)
				assert.Equal(t, entity.CheckoutStepPayment, f.currentState(t).Step)
				assert.Equal(t, []service.CheckoutEventType{service.CheckoutEventPaymentVerificationFailed}, f.eventTypes())

				return
			}

			require.NoError(t, err)
			assert.True(t, result.Completed)
			assert.False(t, result.Verified)
			assert.Equal(t, entity.CheckoutStepCompleted, f.currentState(t).Step)
			assert.Equal(t, []service.CheckoutEventType{
				service.CheckoutEventPaymentVerificationFailed,
				service.CheckoutEventPaymentSucceeded,
			}, f.eventTypes())
		})
	}
}

func TestCheckoutService_Busy(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})

	require.True(t, f.srv.busy.tryAcquire(f.sess.ID))

	_, err := f.srv.Start(context.Background(), f.sess)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutBusy)

	f.srv.busy.release(f.sess.ID)
	_, err = f.srv.Start(context.Background(), f.sess)
	assert.NoError(t, err)
	assert.Zero(t, f.srv.busy.len())
}

func TestCheckoutService_BusyLocksAreReleased(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)
	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, mock.Anything).Return(customer, nil)
	f.srv.auth = auth

	sessions := make([]*state.Session, 50)
	for i := range sessions {
		sessions[i] = newTestSession(t)
	}

	var wg sync.WaitGroup
	for _, sess := range sessions {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = f.srv.Abandon(context.Background(), sess)
		}()
		go func() {
			defer wg.Done()
			_, _ = f.srv.Back(context.Background(), sess)
		}()
	}
	wg.Wait()

	assert.Zero(t, f.srv.busy.len())
}

func TestCheckoutService_Back(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "10.00"), Quantity: 1})
	f.givenState(t, paymentState())

	summary, err := f.srv.Back(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepSummary, summary.State.Step)
	assert.Nil(t, summary.State.PaymentSheet)

	_, err = f.srv.Back(ctx, f.sess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckoutStep)
}

func TestCheckoutService_AbandonPublishesPendingOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, customer, false)
	f.givenState(t, paymentState())

	require.NoError(t, f.srv.Abandon(ctx, f.sess))

	assert.Equal(t, entity.CheckoutStepAddresses, f.currentState(t).Step)
	assert.False(t, f.currentState(t).OrderCreated)
	require.Len(t, f.events, 1)
	assert.Equal(t, service.CheckoutEventAbandoned, f.events[0].Type)
	assert.Equal(t, int64(42), f.events[0].OrderID)
}

func TestCheckoutService_PreparePaymentFailure(t *testing.T) {
	f := newCheckoutFixture(t, customer, false)
	fillCart(t, f.sess, entity.CartItem{Product: testProduct(10, "45.00"), Quantity: 1})
	checkout := paymentState()
	checkout.Step = entity.CheckoutStepSummary
	checkout.PaymentSheet = nil
	f.givenState(t, checkout)
	f.payments.EXPECT().CreatePaymentSheet(mock.Anything, mock.Anything).Return(nil, unreachable())

	_, err := f.srv.PreparePayment(context.Background(), f.sess)

	assert.ErrorIs(t, err, domainerrors.ErrPaymentSheetFailed)
	assert.Equal(t, entity.CheckoutStepSummary, f.currentState(t).Step)
}
