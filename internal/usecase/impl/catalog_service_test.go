package impl

import (
	"context"
	"testing"

	"tradefood/config"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	mockRepo "tradefood/internal/mocks/repository"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Search(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	cfg := &config.Config{Checkout: &config.CheckoutConfig{SearchLimit: 2}}
	srv := NewCatalogService(mockUsecase.NewMockAuthenticator(t), products, mockRepo.NewMockReviewRepository(t), cfg, discardLogger())

	got, err := srv.Search(context.Background(), " b ")
	require.NoError(t, err)
	assert.Empty(t, got)

	products.EXPECT().ListProducts(mock.Anything, &entity.ProductQuery{Search: "brie", Limit: 2}).
		Return([]*entity.Product{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	got, err = srv.Search(context.Background(), "brie ")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListProducts_RejectsNegativePaging(t *testing.T) {
	cfg := &config.Config{Checkout: &config.CheckoutConfig{}}
	srv := NewCatalogService(nil, mockRepo.NewMockProductRepository(t), nil, cfg, discardLogger())

	_, err := srv.ListProducts(context.Background(), entity.ProductQuery{Page: -1})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateReview(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)
	auth := mockUsecase.NewMockAuthenticator(t)
	reviews := mockRepo.NewMockReviewRepository(t)
	cfg := &config.Config{Checkout: &config.CheckoutConfig{}}
	srv := NewCatalogService(auth, mockRepo.NewMockProductRepository(t), reviews, cfg, discardLogger())

	_, err := srv.CreateReview(ctx, sess, usecase.ReviewInput{ProductID: 4, Rating: 6})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).Return(customer, nil)
	reviews.EXPECT().CreateReview(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.ProductID == 4 && r.Rating == 5 && r.Author == "Marie Curie" && r.Comment == "Excellent"
	})).Return(&entity.Review{ID: 12, ProductID: 4, Rating: 5}, nil)

	review, err := srv.CreateReview(ctx, sess, usecase.ReviewInput{ProductID: 4, Rating: 5, Comment: " Excellent "})
	require.NoError(t, err)
	assert.Equal(t, int64(12), review.ID)
}
