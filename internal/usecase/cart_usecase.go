package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"

	"github.com/shopspring/decimal"
)

// CartView is the cart with its derived amounts.
type CartView struct {
	Items     []entity.CartItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// NewCartView derives the amounts of cart.
func NewCartView(cart entity.Cart) *CartView {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &CartView{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

// CartUsecase defines cart operations. The cart never leaves the session
// until it is turned into an order.
type CartUsecase interface {
	Get(ctx context.Context, sess *state.Session) (*CartView, error)

	// AddItem adds quantity units of a product, fetched from the catalogue.
	AddItem(ctx context.Context, sess *state.Session, productID int64, quantity int) (*CartView, error)

	// UpdateQuantity sets the quantity of a line; zero removes it.
	UpdateQuantity(ctx context.Context, sess *state.Session, productID int64, quantity int) (*CartView, error)

	RemoveItem(ctx context.Context, sess *state.Session, productID int64) (*CartView, error)
	Clear(ctx context.Context, sess *state.Session) error
}
