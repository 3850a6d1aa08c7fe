package impl

import (
	"context"
	"strings"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	mockRepo "tradefood/internal/mocks/repository"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceService_RequestQuote(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)
	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).Return(customer, nil)
	quotes := mockRepo.NewMockQuoteRepository(t)
	srv := NewMarketplaceService(auth, quotes, mockRepo.NewMockChatRepository(t), discardLogger())

	_, err := srv.RequestQuote(ctx, sess, usecase.QuoteInput{EstablishmentID: 3, Message: "  "})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.RequestQuote(ctx, sess, usecase.QuoteInput{
		EstablishmentID: 3,
		Message:         "Prix pour 50 kg ?",
		Items:           []entity.OrderLine{{ProductID: 10, Quantity: 0}},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	quotes.EXPECT().RequestQuote(mock.Anything, &entity.QuoteRequest{
		EstablishmentID: 3,
		Message:         "Prix pour 50 kg ?",
		Items:           []entity.OrderLine{{ProductID: 10, Quantity: 50}},
	}).Return(&entity.Quote{ID: 5, Status: entity.QuoteStatusRequested}, nil)

	quote, err := srv.RequestQuote(ctx, sess, usecase.QuoteInput{
		EstablishmentID: 3,
		Message:         "Prix pour 50 kg ?",
		Items:           []entity.OrderLine{{ProductID: 10, Quantity: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRequested, quote.Status)
}

func TestMarketplaceService_SendMessage(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)
	auth := mockUsecase.NewMockAuthenticator(t)
	chat := mockRepo.NewMockChatRepository(t)
	srv := NewMarketplaceService(auth, mockRepo.NewMockQuoteRepository(t), chat, discardLogger())

	_, err := srv.SendMessage(ctx, sess, 1, "   ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	_, err = srv.SendMessage(ctx, sess, 1, strings.Repeat("a", maxChatMessageLength+1))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).Return(customer, nil)
	chat.EXPECT().SendMessage(mock.Anything, int64(1), "Bonjour").Return(&entity.ChatMessage{ID: 9, Body: "Bonjour"}, nil)

	message, err := srv.SendMessage(ctx, sess, 1, " Bonjour ")
	require.NoError(t, err)
	assert.Equal(t, int64(9), message.ID)
}

func TestMarketplaceService_RequiresLogin(t *testing.T) {
	sess := newTestSession(t)
	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).Return(nil, domainerrors.ErrUnauthenticated)
	srv := NewMarketplaceService(auth, mockRepo.NewMockQuoteRepository(t), mockRepo.NewMockChatRepository(t), discardLogger())

	_, err := srv.ListConversations(context.Background(), sess)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_ListOrders(t *testing.T) {
	sess := newTestSession(t)
	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).Return(customer, nil)
	orders := mockRepo.NewMockOrderRepository(t)
	orders.EXPECT().ListOrders(mock.Anything).Return(nil, nil)
	srv := NewOrderService(auth, orders, discardLogger())

	list, err := srv.ListOrders(context.Background(), sess)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
