package state

import (
	"context"
	"slices"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"

	"github.com/shopspring/decimal"
)

// CartStore is the session cart, persisted under the "cart" key.
type CartStore struct {
	storage service.LocalStorage
}

// Get returns the current cart, empty when nothing is stored.
func (s *CartStore) Get(ctx context.Context) (entity.Cart, error) {
	var cart entity.Cart
	if _, err := loadJSON(ctx, s.storage, service.StorageKeyCart, &cart); err != nil {
		return entity.Cart{}, err
	}

	return cart, nil
}

// Items returns the cart lines in insertion order.
func (s *CartStore) Items(ctx context.Context) ([]entity.CartItem, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	return cart.Items, nil
}

// Total returns Σ price × quantity.
func (s *CartStore) Total(ctx context.Context) (decimal.Decimal, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return cart.Total(), nil
}

// Add puts quantity units of product in the cart, merging with an existing line.
// The stored product snapshot is refreshed with the given one.
func (s *CartStore) Add(ctx context.Context, product entity.Product, quantity int) (entity.Cart, error) {
	if quantity <= 0 {
		return entity.Cart{}, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	cart, err := s.Get(ctx)
	if err != nil {
		return entity.Cart{}, err
	}

	idx := indexOf(cart, product.ID)
	if idx >= 0 {
		cart.Items[idx].Product = product
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entity.CartItem{Product: product, Quantity: quantity})
	}

	return cart, s.save(ctx, cart)
}

// SetQuantity sets the quantity of a line; zero or less removes it.
func (s *CartStore) SetQuantity(ctx context.Context, productID int64, quantity int) (entity.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return entity.Cart{}, err
	}

	idx := indexOf(cart, productID)
	if idx < 0 {
		return entity.Cart{}, errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	if quantity <= 0 {
		cart.Items = slices.Delete(cart.Items, idx, idx+1)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	return cart, s.save(ctx, cart)
}

// Remove drops the line of productID. Removing an absent product is a no-op.
func (s *CartStore) Remove(ctx context.Context, productID int64) (entity.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return entity.Cart{}, err
	}

	idx := indexOf(cart, productID)
	if idx < 0 {
		return cart, nil
	}
	cart.Items = slices.Delete(cart.Items, idx, idx+1)

	return cart, s.save(ctx, cart)
}

// Subtract removes the ordered quantities of lines from the cart.
func (s *CartStore) Subtract(ctx context.Context, lines []entity.OrderLine) (entity.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return entity.Cart{}, err
	}
	rest := cart.Without(lines)

	return rest, s.save(ctx, rest)
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.storage.Delete(ctx, service.StorageKeyCart), "failed to clear cart")
}

func (s *CartStore) save(ctx context.Context, cart entity.Cart) error {
	if cart.IsEmpty() {
		return s.Clear(ctx)
	}

	return saveJSON(ctx, s.storage, service.StorageKeyCart, cart)
}

func indexOf(cart entity.Cart, productID int64) int {
	return slices.IndexFunc(cart.Items, func(item entity.CartItem) bool {
		return item.Product.ID == productID
	})
}
