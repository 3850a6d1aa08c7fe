package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// QuoteInput asks a seller for a custom price.
type QuoteInput struct {
	EstablishmentID int64              `json:"establishmentId" validate:"required,gt=0"`
	Message         string             `json:"message" validate:"required,max=2000"`
	Items           []entity.OrderLine `json:"items" validate:"dive"`
}

// MarketplaceUsecase covers quotes and chat with sellers, influencers and agents.
type MarketplaceUsecase interface {
	RequestQuote(ctx context.Context, sess *state.Session, input QuoteInput) (*entity.Quote, error)
	ListQuotes(ctx context.Context, sess *state.Session) ([]*entity.Quote, error)

	ListConversations(ctx context.Context, sess *state.Session) ([]*entity.ChatConversation, error)
	ListMessages(ctx context.Context, sess *state.Session, conversationID int64) ([]*entity.ChatMessage, error)
	SendMessage(ctx context.Context, sess *state.Session, conversationID int64, body string) (*entity.ChatMessage, error)
}
