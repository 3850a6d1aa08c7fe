package state

import (
	"context"
	"slices"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"
)

// FavoriteStore caches the last known favorites list. The backend stays the
// source of truth; the cache is the fallback when it cannot be reached.
type FavoriteStore struct {
	storage service.LocalStorage
}

// List returns the cached favorites and whether a cache exists.
func (s *FavoriteStore) List(ctx context.Context) ([]entity.Favorite, bool, error) {
	var favorites []entity.Favorite
	found, err := loadJSON(ctx, s.storage, service.StorageKeyFavorites, &favorites)
	if err != nil {
		return nil, false, err
	}

	return favorites, found, nil
}

// Replace overwrites the cache.
func (s *FavoriteStore) Replace(ctx context.Context, favorites []entity.Favorite) error {
	if favorites == nil {
		favorites = []entity.Favorite{}
	}

	return saveJSON(ctx, s.storage, service.StorageKeyFavorites, favorites)
}

// Insert puts favorite first, replacing any entry with the same key.
func (s *FavoriteStore) Insert(ctx context.Context, favorite entity.Favorite) error {
	favorites, _, err := s.List(ctx)
	if err != nil {
		return err
	}

	favorites = slices.DeleteFunc(favorites, func(f entity.Favorite) bool {
		return f.Key() == favorite.Key()
	})

	return s.Replace(ctx, append([]entity.Favorite{favorite}, favorites...))
}

// Delete drops the entry with key and returns it, if it was cached.
func (s *FavoriteStore) Delete(ctx context.Context, key entity.FavoriteKey) (*entity.Favorite, error) {
	favorites, _, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(favorites, func(f entity.Favorite) bool { return f.Key() == key })
	if idx < 0 {
		return nil, nil
	}
	removed := favorites[idx]

	return &removed, s.Replace(ctx, slices.Delete(favorites, idx, idx+1))
}

// Restore puts favorite back at position idx, clamped to the list bounds.
func (s *FavoriteStore) Restore(ctx context.Context, favorite entity.Favorite, idx int) error {
	favorites, _, err := s.List(ctx)
	if err != nil {
		return err
	}

	favorites = slices.DeleteFunc(favorites, func(f entity.Favorite) bool {
		return f.Key() == favorite.Key()
	})
	idx = max(0, min(idx, len(favorites)))

	return s.Replace(ctx, slices.Insert(favorites, idx, favorite))
}

// IndexOf returns the position of key in the cache, -1 when absent.
func (s *FavoriteStore) IndexOf(ctx context.Context, key entity.FavoriteKey) (int, error) {
	favorites, _, err := s.List(ctx)
	if err != nil {
		return -1, err
	}

	return slices.IndexFunc(favorites, func(f entity.Favorite) bool { return f.Key() == key }), nil
}

// Contains reports whether key is cached.
func (s *FavoriteStore) Contains(ctx context.Context, key entity.FavoriteKey) (bool, error) {
	idx, err := s.IndexOf(ctx, key)

	return idx >= 0, err
}

// Clear drops the cache.
func (s *FavoriteStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.storage.Delete(ctx, service.StorageKeyFavorites), "failed to clear favorites")
}
