package handler

import (
	"net/http"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartHandlerFixture(t *testing.T) (*mockUsecase.MockCartUsecase, func(method, target, body string) *envelope[*usecase.CartView], func(method, target, body string) int) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: uc, Logger: discardLogger})

	api.GET("/cart", h.GetCart)
	api.DELETE("/cart", h.ClearCart)
	api.POST("/cart/items", h.AddItem)
	api.PUT("/cart/items/:productId", h.UpdateItem)
	api.DELETE("/cart/items/:productId", h.RemoveItem)

	call := func(method, target, body string) *envelope[*usecase.CartView] {
		rec := do(e, method, target, body)
		env := decode[*usecase.CartView](t, rec)

		return &env
	}
	status := func(method, target, body string) int {
		return do(e, method, target, body).Code
	}

	return uc, call, status
}

func cartWith(quantity int) *usecase.CartView {
	return usecase.NewCartView(entity.Cart{Items: []entity.CartItem{{
		Product:  entity.Product{ID: 3, Name: "Comté 18 mois", Price: decimal.RequireFromString("12.50")},
		Quantity: quantity,
	}}})
}

func TestCartHandler_AddItem(t *testing.T) {
	uc, call, status := newCartHandlerFixture(t)
	uc.EXPECT().AddItem(mock.Anything, inSession(), int64(3), 2).Return(cartWith(2), nil).Once()

	env := call("POST", "/api/cart/items", `{"productId":3,"quantity":2}`)

	require.True(t, env.Success)
	assert.Equal(t, 2, env.Data.ItemCount)
	assert.True(t, decimal.RequireFromString("25").Equal(env.Data.Total))

	assert.Equal(t, http.StatusBadRequest, status("POST", "/api/cart/items", `{"productId":3,"quantity":0}`))
}

func TestCartHandler_UpdateItem(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		uc, call, _ := newCartHandlerFixture(t)
		uc.EXPECT().UpdateQuantity(mock.Anything, inSession(), int64(3), 4).Return(cartWith(4), nil).Once()

		env := call("PUT", "/api/cart/items/3", `{"quantity":4}`)

		assert.Equal(t, 4, env.Data.ItemCount)
	})

	t.Run("invalid product id", func(t *testing.T) {
		_, _, status := newCartHandlerFixture(t)

		assert.Equal(t, http.StatusBadRequest, status("PUT", "/api/cart/items/abc", `{"quantity":4}`))
		assert.Equal(t, http.StatusBadRequest, status("PUT", "/api/cart/items/-1", `{"quantity":4}`))
	})

	t.Run("missing line", func(t *testing.T) {
		uc, call, _ := newCartHandlerFixture(t)
		uc.EXPECT().UpdateQuantity(mock.Anything, inSession(), int64(9), 1).
			Return(nil, domainerrors.ErrCartItemNotFound).Once()

		env := call("PUT", "/api/cart/items/9", `{"quantity":1}`)

		assert.Equal(t, http.StatusNotFound, env.Code)
		assert.Equal(t, "CART_ITEM_NOT_FOUND", env.Error.Code)
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	uc, call, _ := newCartHandlerFixture(t)
	uc.EXPECT().Clear(mock.Anything, inSession()).Return(nil).Once()

	env := call("DELETE", "/api/cart", "")

	require.True(t, env.Success)
	assert.Empty(t, env.Data.Items)
	assert.Zero(t, env.Data.ItemCount)
}
