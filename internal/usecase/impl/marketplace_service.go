package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

const maxChatMessageLength = 4000

// marketplaceService implements the MarketplaceUsecase interface.
type marketplaceService struct {
	auth      usecase.Authenticator
	quoteRepo repository.QuoteRepository
	chatRepo  repository.ChatRepository
	logger    *slog.Logger
}

// NewMarketplaceService is the constructor for marketplaceService.
func NewMarketplaceService(
	auth usecase.Authenticator,
	quoteRepo repository.QuoteRepository,
	chatRepo repository.ChatRepository,
	logger *slog.Logger,
) usecase.MarketplaceUsecase {
	return &marketplaceService{
		auth:      auth,
		quoteRepo: quoteRepo,
		chatRepo:  chatRepo,
		logger:    logger,
	}
}

func (srv *marketplaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestQuote implements usecase.MarketplaceUsecase.
func (srv *marketplaceService) RequestQuote(ctx context.Context, sess *state.Session, input usecase.QuoteInput) (*entity.Quote, error) {
	ctx = bind(ctx, sess)
	input.Message = strings.TrimSpace(input.Message)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	quote, err := srv.quoteRepo.RequestQuote(ctx, &entity.QuoteRequest{
		EstablishmentID: input.EstablishmentID,
		Message:         input.Message,
		Items:           input.Items,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to request quote")
	}
	srv.log(ctx).Info("Quote requested",
		slog.Int64("quote_id", quote.ID),
		slog.Int64("establishment_id", input.EstablishmentID),
	)

	return quote, nil
}

// ListQuotes implements usecase.MarketplaceUsecase.
func (srv *marketplaceService) ListQuotes(ctx context.Context, sess *state.Session) ([]*entity.Quote, error) {
	ctx = bind(ctx, sess)
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	quotes, err := srv.quoteRepo.ListQuotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quotes")
	}

	return quotes, nil
}

// ListConversations implements usecase.MarketplaceUsecase.
func (srv *marketplaceService) ListConversations(ctx context.Context, sess *state.Session) ([]*entity.ChatConversation, error) {
	ctx = bind(ctx, sess)
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	conversations, err := srv.chatRepo.ListConversations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// ListMessages implements usecase.MarketplaceUsecase.
func (srv *marketplaceService) ListMessages(ctx context.Context, sess *state.Session, conversationID int64) ([]*entity.ChatMessage, error) {
	ctx = bind(ctx, sess)
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list messages of conversation %d", conversationID)
	}

	return messages, nil
}

// SendMessage implements usecase.MarketplaceUsecase.
func (srv *marketplaceService) SendMessage(ctx context.Context, sess *state.Session, conversationID int64, body string) (*entity.ChatMessage, error) {
	ctx = bind(ctx, sess)
	body = strings.TrimSpace(body)
	if body == "" || len(body) > maxChatMessageLength {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("message must be between 1 and 4000 characters"))
	}
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	message, err := srv.chatRepo.SendMessage(ctx, conversationID, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	return message, nil
}
