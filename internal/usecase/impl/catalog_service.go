package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"tradefood/config"
	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

// minSearchTermLength is the shortest term the header search sends to the backend.
const minSearchTermLength = 2

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	auth        usecase.Authenticator
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	searchLimit int
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	auth usecase.Authenticator,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		auth:        auth,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		searchLimit: cfg.Checkout.SearchLimit,
		logger:      logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts implements usecase.CatalogUsecase.
func (srv *catalogService) ListProducts(ctx context.Context, query entity.ProductQuery) ([]*entity.Product, error) {
	if query.Page < 0 || query.Limit < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("page and limit must not be negative"))
	}
	query.Search = strings.TrimSpace(query.Search)

	products, err := srv.productRepo.ListProducts(ctx, &query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct implements usecase.CatalogUsecase.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get product %d", id)
	}

	return product, nil
}

// Search implements usecase.CatalogUsecase.
func (srv *catalogService) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < minSearchTermLength {
		return []*entity.Product{}, nil
	}

	products, err := srv.productRepo.ListProducts(ctx, &entity.ProductQuery{Search: term, Limit: srv.searchLimit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}
	if srv.searchLimit > 0 && len(products) > srv.searchLimit {
		products = products[:srv.searchLimit]
	}
	srv.log(ctx).Debug("Product search", slog.String("term", term), slog.Int("result_count", len(products)))

	return products, nil
}

// ListReviews implements usecase.CatalogUsecase.
func (srv *catalogService) ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListReviews(ctx, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list reviews of product %d", productID)
	}

	return reviews, nil
}

// CreateReview implements usecase.CatalogUsecase.
func (srv *catalogService) CreateReview(ctx context.Context, sess *state.Session, input usecase.ReviewInput) (*entity.Review, error) {
	ctx = bind(ctx, sess)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.ProductID <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("product id is required"))
	}

	user, err := srv.auth.EnsureAuthenticatedUser(ctx, sess)
	if err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.CreateReview(ctx, &entity.Review{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Author:    user.DisplayName(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}
	srv.log(ctx).Info("Review created", slog.Int64("product_id", input.ProductID), slog.Int("rating", input.Rating))

	return review, nil
}
