package handler

import (
	"log/slog"

	"tradefood/internal/delivery/http/response"
	"tradefood/internal/domain/entity"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves products and reviews.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductListRequest holds the listing filters.
type ProductListRequest struct {
	Search          string `query:"search"`
	CategoryID      int64  `query:"categoryId" validate:"min=0"`
	EstablishmentID int64  `query:"establishmentId" validate:"min=0"`
	Page            int    `query:"page" validate:"min=0"`
	Limit           int    `query:"limit" validate:"min=0,max=100"`
}

// ListProducts handles the product listing
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var req ProductListRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid product filters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), entity.ProductQuery{
		Search:          req.Search,
		CategoryID:      req.CategoryID,
		EstablishmentID: req.EstablishmentID,
		Page:            req.Page,
		Limit:           req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products, "")
}

// Search backs the header search dropdown. Query: q.
func (h *CatalogHandler) Search(c echo.Context) error {
	products, err := h.catalogUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products, "")
}

// GetProduct handles retrieving one product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product, "")
}

// ListReviews handles retrieving the reviews of a product
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.catalogUC.ListReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reviews, "")
}

// CreateReview handles posting a review
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ReviewInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.ProductID = id

	review, err := h.catalogUC.CreateReview(c.Request().Context(), sess, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, review, "Review posted")
}
