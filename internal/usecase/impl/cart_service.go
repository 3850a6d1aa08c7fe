package impl

import (
	"context"
	"log/slog"

	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get implements usecase.CartUsecase.
func (srv *cartService) Get(ctx context.Context, sess *state.Session) (*usecase.CartView, error) {
	cart, err := sess.Cart.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return usecase.NewCartView(cart), nil
}

// AddItem implements usecase.CartUsecase.
func (srv *cartService) AddItem(ctx context.Context, sess *state.Session, productID int64, quantity int) (*usecase.CartView, error) {
	ctx = bind(ctx, sess)

	if quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	product, err := srv.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get product %d", productID)
	}
	if !product.Available {
		return nil, errors.Wrapf(domainerrors.ErrProductUnavailable, "product %d", productID)
	}

	cart, err := sess.Cart.Add(ctx, *product, quantity)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Added to cart", slog.Int64("product_id", productID), slog.Int("quantity", quantity))
	srv.invalidateCheckout(ctx, sess)

	return usecase.NewCartView(cart), nil
}

// UpdateQuantity implements usecase.CartUsecase.
func (srv *cartService) UpdateQuantity(ctx context.Context, sess *state.Session, productID int64, quantity int) (*usecase.CartView, error) {
	cart, err := sess.Cart.SetQuantity(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	srv.invalidateCheckout(ctx, sess)

	return usecase.NewCartView(cart), nil
}

// RemoveItem implements usecase.CartUsecase.
func (srv *cartService) RemoveItem(ctx context.Context, sess *state.Session, productID int64) (*usecase.CartView, error) {
	cart, err := sess.Cart.Remove(ctx, productID)
	if err != nil {
		return nil, err
	}
	srv.invalidateCheckout(ctx, sess)

	return usecase.NewCartView(cart), nil
}

// Clear implements usecase.CartUsecase.
func (srv *cartService) Clear(ctx context.Context, sess *state.Session) error {
	if err := sess.Cart.Clear(ctx); err != nil {
		return err
	}
	srv.invalidateCheckout(ctx, sess)

	return nil
}

// invalidateCheckout drops a shipping quote made for the previous cart content.
// Once the order exists the wizard is left alone: the order is what gets paid.
func (srv *cartService) invalidateCheckout(ctx context.Context, sess *state.Session) {
	checkout, err := sess.Checkout.Load(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load checkout", slog.Any("error", err))

		return
	}
	if checkout.OrderCreated || checkout.Step == entity.CheckoutStepAddresses && checkout.QuotedAddressID == 0 {
		return
	}

	checkout.ClearShipping()
	checkout.Step = entity.CheckoutStepAddresses
	if err := sess.Checkout.Save(ctx, checkout); err != nil {
		srv.log(ctx).Warn("Failed to reset checkout after cart change", slog.Any("error", err))
	}
}
