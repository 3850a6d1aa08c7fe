package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// FavoriteUsecase manages favorites with optimistic local updates.
type FavoriteUsecase interface {
	// List returns the remote favorites, falling back to the cached list when
	// the backend cannot be reached.
	List(ctx context.Context, sess *state.Session) ([]entity.Favorite, error)

	Add(ctx context.Context, sess *state.Session, favorite entity.Favorite) ([]entity.Favorite, error)
	Remove(ctx context.Context, sess *state.Session, key entity.FavoriteKey) ([]entity.Favorite, error)

	// Toggle adds or removes favorite and reports whether it is now a favorite.
	Toggle(ctx context.Context, sess *state.Session, favorite entity.Favorite) (bool, error)
}
