package impl

import (
	"context"
	"log/slog"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	auth      usecase.Authenticator
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(auth usecase.Authenticator, orderRepo repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		auth:      auth,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListOrders implements usecase.OrderUsecase.
func (srv *orderService) ListOrders(ctx context.Context, sess *state.Session) ([]*entity.Order, error) {
	ctx = bind(ctx, sess)
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}
