package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"tradefood/config"
	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/service"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	auth        usecase.Authenticator
	addressRepo repository.AddressRepository
	shipping    repository.ShippingRepository
	orders      repository.OrderRepository
	payments    repository.PaymentRepository
	confirmer   service.PaymentConfirmer
	publisher   service.EventPublisher
	cfg         *config.CheckoutConfig
	logger      *slog.Logger

	busy sessionLocks
}

// sessionLocks holds the ids of sessions with a wizard operation in flight.
// An id is only present while its operation runs.
type sessionLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func (l *sessionLocks) tryAcquire(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[id]; ok {
		return false
	}
	if l.held == nil {
		l.held = make(map[string]struct{})
	}
	l.held[id] = struct{}{}

	return true
}

func (l *sessionLocks) release(id string) {
	l.mu.Lock()
	delete(l.held, id)
	l.mu.Unlock()
}

func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.held)
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	auth usecase.Authenticator,
	addressRepo repository.AddressRepository,
	shipping repository.ShippingRepository,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	confirmer service.PaymentConfirmer,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		auth:        auth,
		addressRepo: addressRepo,
		shipping:    shipping,
		orders:      orders,
		payments:    payments,
		confirmer:   confirmer,
		publisher:   publisher,
		cfg:         cfg.Checkout,
		logger:      logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkoutRun is the context of one wizard operation.
type checkoutRun struct {
	sess     *state.Session
	user     *entity.User
	cart     entity.Cart
	checkout *entity.CheckoutState
}

// begin takes the session's busy flag and loads everything an operation needs.
// The returned release must be called when the operation is done.
func (srv *checkoutService) begin(ctx context.Context, sess *state.Session) (*checkoutRun, func(), error) {
	if !srv.busy.tryAcquire(sess.ID) {
		return nil, nil, errors.WithStack(domainerrors.ErrCheckoutBusy)
	}
	release := func() { srv.busy.release(sess.ID) }

	run, err := srv.load(ctx, sess)
	if err != nil {
		release()

		return nil, nil, err
	}

	return run, release, nil
}

func (srv *checkoutService) load(ctx context.Context, sess *state.Session) (*checkoutRun, error) {
	user, err := srv.auth.EnsureAuthenticatedUser(ctx, sess)
	if err != nil {
		return nil, err
	}

	cart, err := sess.Cart.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	checkout, err := sess.Checkout.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout")
	}

	return &checkoutRun{sess: sess, user: user, cart: cart, checkout: checkout}, nil
}

func (srv *checkoutService) save(ctx context.Context, run *checkoutRun) (*entity.CheckoutSummary, error) {
	if err := run.sess.Checkout.Save(ctx, run.checkout); err != nil {
		return nil, errors.Wrap(err, "failed to save checkout")
	}

	return summarize(run), nil
}

func summarize(run *checkoutRun) *entity.CheckoutSummary {
	subtotal := run.checkout.Subtotal(run.cart)
	shippingCost := run.checkout.ShippingCost()

	return &entity.CheckoutSummary{
		State:        run.checkout,
		StepName:     run.checkout.Step.String(),
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        subtotal.Add(shippingCost),
	}
}

// paymentAmount is the amount charged, in minor currency units. Once the order
// exists it is computed from the lines the order was placed with.
func paymentAmount(run *checkoutRun) int64 {
	return run.checkout.Subtotal(run.cart).Add(run.checkout.ShippingCost()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func requireStep(checkout *entity.CheckoutState, allowed ...entity.CheckoutStep) error {
	for _, step := range allowed {
		if checkout.Step == step {
			return nil
		}
	}

	return errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails(
		fmt.Sprintf("current step is %s", checkout.Step),
	))
}

// State implements usecase.CheckoutUsecase.
func (srv *checkoutService) State(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
	run, err := srv.load(bind(ctx, sess), sess)
	if err != nil {
		return nil, err
	}

	return summarize(run), nil
}

// Start implements usecase.CheckoutUsecase.
func (srv *checkoutService) Start(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if run.cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	previous := run.checkout
	if previous.OrderCreated && !previous.Step.IsTerminal() {
		srv.publish(ctx, run, service.CheckoutEventAbandoned, func(e *service.CheckoutEvent) {
			e.OrderID = previous.OrderID
			e.Reason = "checkout restarted"
		})
	}

	run.checkout = entity.NewCheckoutState()
	if run.user.IsAgent() {
		clientID, err := sess.Auth.SelectedClientID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read selected client")
		}
		run.checkout.ClientID = clientID
	}
	srv.log(ctx).Info("Checkout started", slog.Int("item_count", run.cart.ItemCount()))

	return srv.save(ctx, run)
}

// SelectClient implements usecase.CheckoutUsecase.
func (srv *checkoutService) SelectClient(ctx context.Context, sess *state.Session, clientID int64) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if !run.user.IsAgent() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only sales agents order for clients")
	}
	if err := requireStep(run.checkout, entity.CheckoutStepAddresses, entity.CheckoutStepShipping); err != nil {
		return nil, err
	}

	if err := sess.Auth.SelectClient(ctx, &clientID); err != nil {
		return nil, errors.Wrap(err, "failed to select client")
	}

	run.checkout.ClientID = &clientID
	run.checkout.BillingAddressID = 0
	run.checkout.DeliveryAddressID = 0
	run.checkout.ClearShipping()
	run.checkout.Step = entity.CheckoutStepAddresses

	return srv.save(ctx, run)
}

// findAddress looks the address up in the book the order will be placed for.
func (srv *checkoutService) findAddress(ctx context.Context, run *checkoutRun, addressID int64) (*entity.CompanyAddress, error) {
	scope := entity.UserScope()
	if run.user.IsAgent() {
		if run.checkout.ClientID == nil {
			return nil, errors.WithStack(domainerrors.ErrClientRequired)
		}
		scope = entity.ClientScope(*run.checkout.ClientID)
	}

	addresses, err := srv.addressRepo.ListAddresses(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	address, ok := entity.AddressBook(addresses).Find(addressID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrAddressNotFound, "address %d", addressID)
	}

	return address, nil
}

// SelectBillingAddress implements usecase.CheckoutUsecase.
func (srv *checkoutService) SelectBillingAddress(ctx context.Context, sess *state.Session, addressID int64) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := requireStep(run.checkout, entity.CheckoutStepAddresses, entity.CheckoutStepShipping); err != nil {
		return nil, err
	}

	address, err := srv.findAddress(ctx, run, addressID)
	if err != nil {
		return nil, err
	}
	if !address.IsInvoicingAddress && !address.IsDefaultAddress {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("not an invoicing address"))
	}

	run.checkout.BillingAddressID = addressID
	run.checkout.Step = entity.CheckoutStepAddresses

	return srv.save(ctx, run)
}

// SelectDeliveryAddress implements usecase.CheckoutUsecase. Re-selecting the
// address shipping was quoted for does not quote again.
func (srv *checkoutService) SelectDeliveryAddress(ctx context.Context, sess *state.Session, addressID int64) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := requireStep(run.checkout, entity.CheckoutStepAddresses, entity.CheckoutStepShipping); err != nil {
		return nil, err
	}

	address, err := srv.findAddress(ctx, run, addressID)
	if err != nil {
		return nil, err
	}
	if !address.IsDeliveryAddress && !address.IsDefaultAddress {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("not a delivery address"))
	}

	if run.checkout.DeliveryAddressID == addressID && run.checkout.QuotedAddressID == addressID {
		return summarize(run), nil
	}

	run.checkout.Step = entity.CheckoutStepAddresses
	run.checkout.DeliveryAddressID = addressID
	run.checkout.ClearShipping()
	if run.cart.IsEmpty() {
		return srv.save(ctx, run)
	}

	quoteErr := srv.quote(ctx, run)
	summary, err := srv.save(ctx, run)
	if quoteErr != nil {
		return nil, quoteErr
	}

	return summary, err
}

// quote asks the backend for shipping methods and selects the first one.
func (srv *checkoutService) quote(ctx context.Context, run *checkoutRun) error {
	methods, err := srv.shipping.CalculateShipping(ctx, &entity.ShippingQuoteRequest{
		AddressID: run.checkout.DeliveryAddressID,
		Items:     run.cart.OrderLines(),
	})
	if err != nil {
		srv.log(ctx).Error("Shipping quote failed",
			slog.Int64("address_id", run.checkout.DeliveryAddressID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to calculate shipping")
	}
	if len(methods) == 0 {
		return errors.Wrapf(domainerrors.ErrShippingUnavailable, "address %d", run.checkout.DeliveryAddressID)
	}

	run.checkout.ShippingMethods = methods
	run.checkout.QuotedAddressID = run.checkout.DeliveryAddressID
	run.checkout.SelectedShippingMethodID = methods[0].ID
	srv.log(ctx).Debug("Shipping quoted",
		slog.Int64("address_id", run.checkout.DeliveryAddressID),
		slog.Int("method_count", len(methods)),
	)

	return nil
}

// ConfirmAddresses implements usecase.CheckoutUsecase.
func (srv *checkoutService) ConfirmAddresses(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if run.checkout.Step == entity.CheckoutStepShipping {
		return summarize(run), nil
	}
	if err := requireStep(run.checkout, entity.CheckoutStepAddresses); err != nil {
		return nil, err
	}
	if run.cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}
	if run.user.IsAgent() && run.checkout.ClientID == nil {
		return nil, errors.WithStack(domainerrors.ErrClientRequired)
	}
	if !run.checkout.HasAddresses() {
		return nil, errors.WithStack(domainerrors.ErrAddressRequired)
	}

	if run.checkout.QuotedAddressID != run.checkout.DeliveryAddressID || len(run.checkout.ShippingMethods) == 0 {
		if err := srv.quote(ctx, run); err != nil {
			return nil, err
		}
	}

	run.checkout.Step = entity.CheckoutStepShipping

	return srv.save(ctx, run)
}

// SelectShippingMethod implements usecase.CheckoutUsecase. Selecting the
// current method changes nothing.
func (srv *checkoutService) SelectShippingMethod(ctx context.Context, sess *state.Session, methodID string) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := requireStep(run.checkout, entity.CheckoutStepShipping); err != nil {
		return nil, err
	}
	if methodID == run.checkout.SelectedShippingMethodID {
		return summarize(run), nil
	}

	known := false
	for _, method := range run.checkout.ShippingMethods {
		if method.ID == methodID {
			known = true

			break
		}
	}
	if !known {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown shipping method " + methodID))
	}

	run.checkout.SelectedShippingMethodID = methodID

	return srv.save(ctx, run)
}

// PlaceOrder implements usecase.CheckoutUsecase. A failed creation keeps the
// wizard on the shipping step; the user retries.
func (srv *checkoutService) PlaceOrder(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if run.checkout.OrderCreated {
		return summarize(run), nil
	}
	if err := requireStep(run.checkout, entity.CheckoutStepShipping); err != nil {
		return nil, err
	}
	if run.cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}
	if !run.checkout.HasAddresses() {
		return nil, errors.WithStack(domainerrors.ErrAddressRequired)
	}
	method, ok := run.checkout.SelectedShippingMethod()
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrShippingMethodRequired)
	}
	if run.user.IsAgent() && run.checkout.ClientID == nil {
		return nil, errors.WithStack(domainerrors.ErrClientRequired)
	}

	draft := &entity.OrderDraft{
		InvoicingAddressID: run.checkout.BillingAddressID,
		DeliveryAddressID:  run.checkout.DeliveryAddressID,
		Items:              run.cart.OrderLines(),
		ShippingMethodID:   method.ID,
	}
	if run.user.IsAgent() {
		draft.ClientID = run.checkout.ClientID
	}

	order, err := srv.orders.CreateOrder(ctx, draft)
	if err != nil {
		srv.log(ctx).Error("Order creation failed", slog.Any("error", err))
		if isBackendRejection(err) {
			return nil, errors.Wrap(err, "order rejected")
		}

		return nil, errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
	}

	run.checkout.RecordOrder(order.ID, run.cart)
	run.checkout.Step = entity.CheckoutStepSummary
	srv.log(ctx).Info("Order created", slog.Int64("order_id", order.ID), slog.String("status", string(order.Status)))

	summary, err := srv.save(ctx, run)
	if err != nil {
		return nil, err
	}
	srv.publish(ctx, run, service.CheckoutEventOrderCreated, func(e *service.CheckoutEvent) {
		e.Amount = paymentAmount(run)
	})

	return summary, nil
}

// PreparePayment implements usecase.CheckoutUsecase.
func (srv *checkoutService) PreparePayment(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := requireStep(run.checkout, entity.CheckoutStepSummary); err != nil {
		return nil, err
	}
	if !run.checkout.OrderCreated {
		return nil, errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails("no order to pay"))
	}

	amount := paymentAmount(run)
	sheet, err := srv.payments.CreatePaymentSheet(ctx, &entity.PaymentSheetRequest{
		Amount:      amount,
		Currency:    srv.cfg.Currency,
		Description: "Commande #" + strconv.FormatInt(run.checkout.OrderID, 10),
		UserID:      run.user.ID,
		OrderID:     run.checkout.OrderID,
	})
	if err != nil {
		srv.log(ctx).Error("Payment sheet creation failed", slog.Int64("order_id", run.checkout.OrderID), slog.Any("error", err))
		if isBackendRejection(err) {
			return nil, errors.Wrap(err, "payment sheet rejected")
		}

		return nil, errors.Wrap(domainerrors.ErrPaymentSheetFailed, err.Error())
	}

	run.checkout.PaymentSheet = sheet
	run.checkout.Step = entity.CheckoutStepPayment
	srv.log(ctx).Info("Payment prepared",
		slog.Int64("order_id", run.checkout.OrderID),
		slog.Int64("amount", amount),
		slog.String("payment_intent_id", sheet.PaymentIntentID()),
	)

	return srv.save(ctx, run)
}

// ConfirmPayment implements usecase.CheckoutUsecase.
func (srv *checkoutService) ConfirmPayment(ctx context.Context, sess *state.Session, paymentMethodID string) (*entity.PaymentResult, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := requireStep(run.checkout, entity.CheckoutStepPayment); err != nil {
		return nil, err
	}
	sheet := run.checkout.PaymentSheet
	if sheet == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails("no payment session"))
	}
	if run.checkout.AwaitingAction {
		return nil, errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails("payment is awaiting customer action"))
	}
	if paymentMethodID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("payment method is required"))
	}

	confirmation, err := srv.confirmer.ConfirmPayment(ctx, &service.ConfirmPaymentInput{
		ClientSecret:    sheet.PaymentIntent,
		PublishableKey:  sheet.PublishableKey,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		srv.log(ctx).Error("Payment confirmation failed", slog.Int64("order_id", run.checkout.OrderID), slog.Any("error", err))

		return nil, srv.failPayment(ctx, run, sheet.PaymentIntentID(), err.Error())
	}

	return srv.settle(ctx, run, confirmation)
}

// CompletePayment implements usecase.CheckoutUsecase. It is called when the
// customer returns from the provider's authentication page and settles the
// payment from the intent's current status without confirming it again.
func (srv *checkoutService) CompletePayment(ctx context.Context, sess *state.Session) (*entity.PaymentResult, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := requireStep(run.checkout, entity.CheckoutStepPayment); err != nil {
		return nil, err
	}
	sheet := run.checkout.PaymentSheet
	if sheet == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails("no payment session"))
	}

	current, err := srv.confirmer.PaymentStatus(ctx, &service.ConfirmPaymentInput{
		ClientSecret:   sheet.PaymentIntent,
		PublishableKey: sheet.PublishableKey,
	})
	if err != nil {
		srv.log(ctx).Error("Payment status lookup failed",
			slog.Int64("order_id", run.checkout.OrderID),
			slog.String("payment_intent_id", sheet.PaymentIntentID()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPaymentVerificationFailed, err.Error())
	}

	return srv.settle(ctx, run, current)
}

// settle acts on the provider status of the session's payment intent.
func (srv *checkoutService) settle(ctx context.Context, run *checkoutRun, confirmation *service.ConfirmPaymentResult) (*entity.PaymentResult, error) {
	switch {
	case confirmation.Status.IsSuccessful():
		return srv.completePayment(ctx, run, confirmation)

	case confirmation.Status == entity.PaymentIntentRequiresAction:
		srv.log(ctx).Info("Payment requires customer action", slog.String("payment_intent_id", confirmation.PaymentIntentID))
		if !run.checkout.AwaitingAction {
			run.checkout.AwaitingAction = true
			if _, err := srv.save(ctx, run); err != nil {
				return nil, err
			}
		}

		return &entity.PaymentResult{
			OrderID:       run.checkout.OrderID,
			Status:        confirmation.Status,
			NextActionURL: confirmation.NextActionURL,
		}, nil

	default:
		reason := confirmation.FailureMessage
		if reason == "" {
			reason = "payment " + string(confirmation.Status)
		}

		return nil, srv.failPayment(ctx, run, confirmation.PaymentIntentID, reason)
	}
}

// completePayment verifies the payment with the backend and closes the wizard.
func (srv *checkoutService) completePayment(ctx context.Context, run *checkoutRun, confirmation *service.ConfirmPaymentResult) (*entity.PaymentResult, error) {
	verified := true
	status, err := srv.payments.VerifyPaymentStatus(ctx, confirmation.PaymentIntentID)
	switch {
	case err != nil:
		verified = false
		srv.log(ctx).Warn("Payment verification failed",
			slog.Int64("order_id", run.checkout.OrderID),
			slog.String("payment_intent_id", confirmation.PaymentIntentID),
			slog.Any("error", err),
		)
	case !status.Status.IsSuccessful():
		verified = false
		srv.log(ctx).Warn("Payment verification disagrees with provider",
			slog.Int64("order_id", run.checkout.OrderID),
			slog.String("payment_intent_id", confirmation.PaymentIntentID),
			slog.String("backend_status", string(status.Status)),
		)
	}

	if !verified {
		srv.publish(ctx, run, service.CheckoutEventPaymentVerificationFailed, func(e *service.CheckoutEvent) {
			e.PaymentIntentID = confirmation.PaymentIntentID
			e.Amount = paymentAmount(run)
		})
		if srv.cfg.RequireVerifiedPayment {
			return nil, errors.WithStack(domainerrors.ErrPaymentVerificationFailed)
		}
	}

	amount := paymentAmount(run)
	if err := srv.removeOrdered(ctx, run); err != nil {
		return nil, err
	}
	run.checkout.ClearPayment()
	run.checkout.Step = entity.CheckoutStepCompleted
	if _, err := srv.save(ctx, run); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment succeeded",
		slog.Int64("order_id", run.checkout.OrderID),
		slog.String("payment_intent_id", confirmation.PaymentIntentID),
		slog.Bool("verified", verified),
	)
	srv.publish(ctx, run, service.CheckoutEventPaymentSucceeded, func(e *service.CheckoutEvent) {
		e.PaymentIntentID = confirmation.PaymentIntentID
		e.Amount = amount
	})

	return &entity.PaymentResult{
		OrderID:     run.checkout.OrderID,
		Status:      confirmation.Status,
		Verified:    verified,
		Completed:   true,
		RedirectURL: srv.successURL(run.checkout.OrderID),
	}, nil
}

// removeOrdered takes the ordered quantities out of the cart. Items added
// after the order was placed stay.
func (srv *checkoutService) removeOrdered(ctx context.Context, run *checkoutRun) error {
	if len(run.checkout.OrderLines) == 0 {
		if err := run.sess.Cart.Clear(ctx); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	}

	cart, err := run.sess.Cart.Subtract(ctx, run.checkout.OrderLines)
	if err != nil {
		return errors.Wrap(err, "failed to update cart")
	}
	run.cart = cart

	return nil
}

// failPayment discards the payment session and returns to the summary step
// so a new one can be opened.
func (srv *checkoutService) failPayment(ctx context.Context, run *checkoutRun, paymentIntentID, reason string) error {
	run.checkout.ClearPayment()
	run.checkout.Step = entity.CheckoutStepSummary
	if _, err := srv.save(ctx, run); err != nil {
		return err
	}

	srv.publish(ctx, run, service.CheckoutEventPaymentFailed, func(e *service.CheckoutEvent) {
		e.PaymentIntentID = paymentIntentID
		e.Amount = paymentAmount(run)
		e.Reason = reason
	})

	return errors.WithStack(domainerrors.ErrPaymentFailed.WithDetails(reason))
}

func (srv *checkoutService) successURL(orderID int64) string {
	if srv.cfg.SuccessURL == "" {
		return ""
	}

	u, err := url.Parse(srv.cfg.SuccessURL)
	if err != nil {
		return srv.cfg.SuccessURL
	}
	query := u.Query()
	query.Set("orderId", strconv.FormatInt(orderID, 10))
	u.RawQuery = query.Encode()

	return u.String()
}

// Back implements usecase.CheckoutUsecase.
func (srv *checkoutService) Back(ctx context.Context, sess *state.Session) (*entity.CheckoutSummary, error) {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	switch run.checkout.Step {
	case entity.CheckoutStepShipping:
		run.checkout.Step = entity.CheckoutStepAddresses
	case entity.CheckoutStepSummary:
		if run.checkout.OrderCreated {
			return nil, errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails("the order is already created"))
		}
		run.checkout.Step = entity.CheckoutStepShipping
	case entity.CheckoutStepPayment:
		run.checkout.ClearPayment()
		run.checkout.Step = entity.CheckoutStepSummary
	default:
		return nil, errors.WithStack(domainerrors.ErrInvalidCheckoutStep.WithDetails(
			fmt.Sprintf("cannot go back from %s", run.checkout.Step),
		))
	}

	return srv.save(ctx, run)
}

// Abandon implements usecase.CheckoutUsecase. A created order stays pending on the backend.
func (srv *checkoutService) Abandon(ctx context.Context, sess *state.Session) error {
	ctx = bind(ctx, sess)
	run, release, err := srv.begin(ctx, sess)
	if err != nil {
		return err
	}
	defer release()

	if run.checkout.OrderCreated && !run.checkout.Step.IsTerminal() {
		srv.publish(ctx, run, service.CheckoutEventAbandoned, func(e *service.CheckoutEvent) {
			e.Reason = "checkout abandoned at step " + run.checkout.Step.String()
		})
	}

	if err := sess.Checkout.Reset(ctx); err != nil {
		return errors.Wrap(err, "failed to reset checkout")
	}
	srv.log(ctx).Info("Checkout abandoned", slog.Int64("order_id", run.checkout.OrderID))

	return nil
}

// publish sends a checkout event. Publishing never fails the operation.
func (srv *checkoutService) publish(ctx context.Context, run *checkoutRun, eventType service.CheckoutEventType, fill func(*service.CheckoutEvent)) {
	event := &service.CheckoutEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		SessionID:  run.sess.ID,
		UserID:     run.user.ID,
		ClientID:   run.checkout.ClientID,
		OrderID:    run.checkout.OrderID,
		OccurredAt: time.Now().UTC(),
	}
	if fill != nil {
		fill(event)
	}

	if err := srv.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish checkout event",
			slog.String("event_type", string(eventType)),
			slog.Int64("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
