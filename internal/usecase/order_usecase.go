package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// OrderUsecase reads the order history.
type OrderUsecase interface {
	ListOrders(ctx context.Context, sess *state.Session) ([]*entity.Order, error)
}
