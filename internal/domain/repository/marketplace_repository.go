package repository

import (
	"context"

	"tradefood/internal/domain/entity"
)

// QuoteRepository handles quote requests.
type QuoteRepository interface {
	RequestQuote(ctx context.Context, req *entity.QuoteRequest) (*entity.Quote, error)
	ListQuotes(ctx context.Context) ([]*entity.Quote, error)
}

// ChatRepository handles conversations with sellers, influencers and agents.
type ChatRepository interface {
	ListConversations(ctx context.Context) ([]*entity.ChatConversation, error)
	ListMessages(ctx context.Context, conversationID int64) ([]*entity.ChatMessage, error)
	SendMessage(ctx context.Context, conversationID int64, body string) (*entity.ChatMessage, error)
}
