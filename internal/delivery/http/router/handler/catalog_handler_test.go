package handler

import (
	"net/http"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler(t *testing.T) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc, Logger: discardLogger})
	api.GET("/products", h.ListProducts)
	api.GET("/products/search", h.Search)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/products/:id/reviews", h.ListReviews)
	api.POST("/products/:id/reviews", h.CreateReview)

	t.Run("list with filters", func(t *testing.T) {
		uc.EXPECT().ListProducts(mock.Anything, entity.ProductQuery{CategoryID: 2, Page: 3, Limit: 20}).
			Return([]*entity.Product{{ID: 1}}, nil).Once()

		rec := do(e, http.MethodGet, "/api/products?categoryId=2&page=3&limit=20", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, decode[[]*entity.Product](t, rec).Data, 1)
	})

	t.Run("limit too large", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/products?limit=500", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("search", func(t *testing.T) {
		uc.EXPECT().Search(mock.Anything, "comté").Return([]*entity.Product{}, nil).Once()

		rec := do(e, http.MethodGet, "/api/products/search?q=comt%C3%A9", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing product", func(t *testing.T) {
		uc.EXPECT().GetProduct(mock.Anything, int64(404)).Return(nil, domainerrors.ErrNotFound).Once()

		rec := do(e, http.MethodGet, "/api/products/404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("review takes the product from the path", func(t *testing.T) {
		uc.EXPECT().CreateReview(mock.Anything, inSession(), usecase.ReviewInput{ProductID: 5, Rating: 4, Comment: "Très bon"}).
			Return(&entity.Review{ID: 1, ProductID: 5, Rating: 4}, nil).Once()

		rec := do(e, http.MethodPost, "/api/products/5/reviews", `{"rating":4,"comment":"Très bon"}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("rating out of range", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/products/5/reviews", `{"rating":6}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
