package handler

import (
	"log/slog"

	"tradefood/internal/delivery/http/response"
	"tradefood/internal/domain/entity"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// UpdateItemRequest sets the quantity of a cart line; zero removes it.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// GetCart returns the cart of the session.
func (h *CartHandler) GetCart(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.Get(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "")
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), sess, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Product added to cart")
}

// UpdateItem handles changing the quantity of a cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid quantity")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), sess, productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Cart updated")
}

// RemoveItem handles removing a cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), sess, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Product removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.Clear(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, usecase.NewCartView(entity.Cart{}), "Cart cleared")
}
