package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*Client)(nil)
	_ repository.ReviewRepository   = (*Client)(nil)
	_ repository.FavoriteRepository = (*Client)(nil)
)

type reviewDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type favoriteDTO struct {
	Type     entity.FavoriteType `json:"type"`
	TargetID int64               `json:"targetId"`
}

func productQuery(q *entity.ProductQuery) url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.CategoryID != 0 {
		values.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.EstablishmentID != 0 {
		values.Set("establishmentId", strconv.FormatInt(q.EstablishmentID, 10))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}

// ListProducts calls GET /products.
func (c *Client) ListProducts(ctx context.Context, query *entity.ProductQuery) ([]*entity.Product, error) {
	var out []*entity.Product
	if err := c.do(ctx, http.MethodGet, "/products", productQuery(query), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetProduct calls GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListReviews calls GET /products/{id}/reviews.
func (c *Client) ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var out []*entity.Review
	path := "/products/" + strconv.FormatInt(productID, 10) + "/reviews"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateReview calls POST /products/{id}/reviews.
func (c *Client) CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	var out entity.Review
	path := "/products/" + strconv.FormatInt(review.ProductID, 10) + "/reviews"
	if err := c.do(ctx, http.MethodPost, path, nil, reviewDTO{Rating: review.Rating, Comment: review.Comment}, &out); err != nil {
		return nil, err
	}
	if out.ProductID == 0 {
		out.ProductID = review.ProductID
	}

	return &out, nil
}

// ListFavorites calls GET /favorites.
func (c *Client) ListFavorites(ctx context.Context) ([]entity.Favorite, error) {
	var out []entity.Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// AddFavorite calls POST /favorites.
func (c *Client) AddFavorite(ctx context.Context, key entity.FavoriteKey) error {
	return c.do(ctx, http.MethodPost, "/favorites", nil, favoriteDTO{Type: key.Type, TargetID: key.ID}, nil)
}

// RemoveFavorite calls DELETE /favorites/{type}/{id}.
func (c *Client) RemoveFavorite(ctx context.Context, key entity.FavoriteKey) error {
	path := "/favorites/" + url.PathEscape(string(key.Type)) + "/" + strconv.FormatInt(key.ID, 10)

	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
