package handler

import (
	"log/slog"

	"tradefood/internal/delivery/http/response"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MarketplaceHandlerParams holds dependencies for MarketplaceHandler, injected by Fx.
type MarketplaceHandlerParams struct {
	fx.In

	MarketplaceUC usecase.MarketplaceUsecase
	Logger        *slog.Logger
}

// MarketplaceHandler serves quotes and chat.
type MarketplaceHandler struct {
	marketplaceUC usecase.MarketplaceUsecase
	logger        *slog.Logger
}

// NewMarketplaceHandler is the constructor for MarketplaceHandler
func NewMarketplaceHandler(params MarketplaceHandlerParams) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUC: params.MarketplaceUC,
		logger:        params.Logger,
	}
}

// SendMessageRequest represents the request body for a chat message
type SendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// RequestQuote handles asking a seller for a quote
func (h *MarketplaceHandler) RequestQuote(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req usecase.QuoteInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid quote request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	quote, err := h.marketplaceUC.RequestQuote(c.Request().Context(), sess, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, quote, "Quote requested")
}

// ListQuotes handles retrieving the quotes of the logged-in user
func (h *MarketplaceHandler) ListQuotes(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	quotes, err := h.marketplaceUC.ListQuotes(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, quotes, "")
}

// ListConversations handles retrieving chat conversations
func (h *MarketplaceHandler) ListConversations(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	conversations, err := h.marketplaceUC.ListConversations(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, conversations, "")
}

// ListMessages handles retrieving the messages of a conversation
func (h *MarketplaceHandler) ListMessages(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.marketplaceUC.ListMessages(c.Request().Context(), sess, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, messages, "")
}

// SendMessage handles posting a chat message
func (h *MarketplaceHandler) SendMessage(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid message")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.marketplaceUC.SendMessage(c.Request().Context(), sess, id, req.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, message, "Message sent")
}
