package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// ReviewInput is a review submitted by a customer.
type ReviewInput struct {
	ProductID int64  `json:"-"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

// CatalogUsecase browses products and their reviews.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, query entity.ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// Search backs the header search dropdown; results are capped.
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
	CreateReview(ctx context.Context, sess *state.Session, input ReviewInput) (*entity.Review, error)
}
