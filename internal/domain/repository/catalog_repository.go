package repository

import (
	"context"

	"tradefood/internal/domain/entity"
)

// ProductRepository reads the catalogue.
type ProductRepository interface {
	ListProducts(ctx context.Context, query *entity.ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}

// ReviewRepository reads and writes product reviews.
type ReviewRepository interface {
	ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
	CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error)
}

// FavoriteRepository mirrors the remote favorites relation.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context) ([]entity.Favorite, error)
	AddFavorite(ctx context.Context, key entity.FavoriteKey) error
	RemoveFavorite(ctx context.Context, key entity.FavoriteKey) error
}
