package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

// favoriteCommand is an optimistic change: apply it to the cache, run it
// against the backend, roll the cache back if the backend refuses.
type favoriteCommand struct {
	apply    func(ctx context.Context) error
	remote   func(ctx context.Context) error
	rollback func(ctx context.Context) error
}

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	auth         usecase.Authenticator
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	auth usecase.Authenticator,
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		auth:         auth,
		favoriteRepo: favoriteRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List implements usecase.FavoriteUsecase.
func (srv *favoriteService) List(ctx context.Context, sess *state.Session) ([]entity.Favorite, error) {
	ctx = bind(ctx, sess)
	if _, err := srv.auth.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.ListFavorites(ctx)
	if err != nil {
		if !isBackendUnavailable(err) {
			return nil, errors.Wrap(err, "failed to list favorites")
		}

		cached, found, cacheErr := sess.Favorites.List(ctx)
		if cacheErr != nil || !found {
			return nil, errors.Wrap(err, "failed to list favorites")
		}
		srv.log(ctx).Warn("Serving cached favorites", slog.Int("count", len(cached)), slog.Any("error", err))

		return cached, nil
	}

	if err := sess.Favorites.Replace(ctx, favorites); err != nil {
		srv.log(ctx).Warn("Failed to cache favorites", slog.Any("error", err))
	}

	return favorites, nil
}

// Add implements usecase.FavoriteUsecase.
func (srv *favoriteService) Add(ctx context.Context, sess *state.Session, favorite entity.Favorite) ([]entity.Favorite, error) {
	ctx = bind(ctx, sess)
	if err := srv.check(ctx, sess, favorite.Key()); err != nil {
		return nil, err
	}
	if favorite.AddedAt.IsZero() {
		favorite.AddedAt = srv.now().UTC()
	}

	current, _, err := sess.Favorites.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read favorites")
	}
	// An existing entry is overwritten by Insert and put back on rollback.
	var previous *entity.Favorite
	prevIdx := slices.IndexFunc(current, func(f entity.Favorite) bool { return f.Key() == favorite.Key() })
	if prevIdx >= 0 {
		previous = &current[prevIdx]
	}

	err = srv.run(ctx, favoriteCommand{
		apply: func(ctx context.Context) error {
			return sess.Favorites.Insert(ctx, favorite)
		},
		remote: func(ctx context.Context) error {
			return srv.favoriteRepo.AddFavorite(ctx, favorite.Key())
		},
		rollback: func(ctx context.Context) error {
			if previous != nil {
				return sess.Favorites.Restore(ctx, *previous, prevIdx)
			}
			_, err := sess.Favorites.Delete(ctx, favorite.Key())

			return err
		},
	})
	if err != nil {
		return nil, err
	}

	return srv.cached(ctx, sess)
}

// Remove implements usecase.FavoriteUsecase.
func (srv *favoriteService) Remove(ctx context.Context, sess *state.Session, key entity.FavoriteKey) ([]entity.Favorite, error) {
	ctx = bind(ctx, sess)
	if err := srv.check(ctx, sess, key); err != nil {
		return nil, err
	}

	var (
		removed *entity.Favorite
		idx     int
	)
	err := srv.run(ctx, favoriteCommand{
		apply: func(ctx context.Context) error {
			var err error
			if idx, err = sess.Favorites.IndexOf(ctx, key); err != nil {
				return err
			}
			removed, err = sess.Favorites.Delete(ctx, key)

			return err
		},
		remote: func(ctx context.Context) error {
			return srv.favoriteRepo.RemoveFavorite(ctx, key)
		},
		rollback: func(ctx context.Context) error {
			if removed == nil {
				return nil
			}

			return sess.Favorites.Restore(ctx, *removed, idx)
		},
	})
	if err != nil {
		return nil, err
	}

	return srv.cached(ctx, sess)
}

// Toggle implements usecase.FavoriteUsecase.
func (srv *favoriteService) Toggle(ctx context.Context, sess *state.Session, favorite entity.Favorite) (bool, error) {
	ctx = bind(ctx, sess)
	present, err := sess.Favorites.Contains(ctx, favorite.Key())
	if err != nil {
		return false, errors.Wrap(err, "failed to read favorites")
	}

	if present {
		_, err = srv.Remove(ctx, sess, favorite.Key())

		return false, err
	}
	_, err = srv.Add(ctx, sess, favorite)

	return err == nil, err
}

func (srv *favoriteService) check(ctx context.Context, sess *state.Session, key entity.FavoriteKey) error {
	if !key.Type.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown favorite type " + string(key.Type)))
	}
	if key.ID <= 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("favorite id is required"))
	}
	_, err := srv.auth.EnsureAuthenticatedUser(ctx, sess)

	return err
}

// run executes cmd, undoing the local change when the backend call fails.
func (srv *favoriteService) run(ctx context.Context, cmd favoriteCommand) error {
	if err := cmd.apply(ctx); err != nil {
		return errors.Wrap(err, "failed to update favorites")
	}

	remoteErr := cmd.remote(ctx)
	if remoteErr == nil {
		return nil
	}

	if err := cmd.rollback(ctx); err != nil {
		srv.log(ctx).Error("Failed to roll back favorites", slog.Any("error", err))
	}
	srv.log(ctx).Warn("Favorite change rejected", slog.Any("error", remoteErr))

	return errors.Wrap(remoteErr, "failed to update favorites")
}

func (srv *favoriteService) cached(ctx context.Context, sess *state.Session) ([]entity.Favorite, error) {
	favorites, _, err := sess.Favorites.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read favorites")
	}
	if favorites == nil {
		favorites = []entity.Favorite{}
	}

	return favorites, nil
}
