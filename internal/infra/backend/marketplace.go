package backend

import (
	"context"
	"net/http"
	"strconv"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/repository"
)

var (
	_ repository.QuoteRepository = (*Client)(nil)
	_ repository.ChatRepository  = (*Client)(nil)
)

type quoteRequestDTO struct {
	EstablishmentID int64              `json:"establishmentId"`
	Message         string             `json:"message"`
	Items           []entity.OrderLine `json:"items"`
}

type chatMessageDTO struct {
	Body string `json:"body"`
}

func messagesPath(conversationID int64) string {
	return "/chat/conversations/" + strconv.FormatInt(conversationID, 10) + "/messages"
}

// RequestQuote calls POST /quotes.
func (c *Client) RequestQuote(ctx context.Context, req *entity.QuoteRequest) (*entity.Quote, error) {
	body := quoteRequestDTO{EstablishmentID: req.EstablishmentID, Message: req.Message, Items: req.Items}
	if body.Items == nil {
		body.Items = []entity.OrderLine{}
	}

	var out entity.Quote
	if err := c.do(ctx, http.MethodPost, "/quotes", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListQuotes calls GET /quotes.
func (c *Client) ListQuotes(ctx context.Context) ([]*entity.Quote, error) {
	var out []*entity.Quote
	if err := c.do(ctx, http.MethodGet, "/quotes", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListConversations calls GET /chat/conversations.
func (c *Client) ListConversations(ctx context.Context) ([]*entity.ChatConversation, error) {
	var out []*entity.ChatConversation
	if err := c.do(ctx, http.MethodGet, "/chat/conversations", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListMessages calls GET /chat/conversations/{id}/messages.
func (c *Client) ListMessages(ctx context.Context, conversationID int64) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	if err := c.do(ctx, http.MethodGet, messagesPath(conversationID), nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// SendMessage calls POST /chat/conversations/{id}/messages.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, body string) (*entity.ChatMessage, error) {
	var out entity.ChatMessage
	if err := c.do(ctx, http.MethodPost, messagesPath(conversationID), nil, chatMessageDTO{Body: body}, &out); err != nil {
		return nil, err
	}
	if out.ConversationID == 0 {
		out.ConversationID = conversationID
	}

	return &out, nil
}
