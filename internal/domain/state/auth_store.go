package state

import (
	"context"
	"strconv"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"
)

// AuthStore holds the tokens, the cached user and the client a sales agent
// currently orders for.
type AuthStore struct {
	storage service.LocalStorage
}

// Token returns the access token, empty when logged out.
func (s *AuthStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, service.StorageKeyAuthToken)
}

// RefreshToken returns the refresh token, empty when none was issued.
func (s *AuthStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, service.StorageKeyRefreshToken)
}

// User returns the cached user, nil when not cached.
func (s *AuthStore) User(ctx context.Context) (*entity.User, error) {
	var user entity.User
	found, err := loadJSON(ctx, s.storage, service.StorageKeyAuthUser, &user)
	if err != nil || !found {
		return nil, err
	}

	return &user, nil
}

// SetSession stores a fresh login: tokens and, when known, the user.
// Any previous user and selected client are forgotten.
func (s *AuthStore) SetSession(ctx context.Context, tokens entity.AuthTokens, user *entity.User) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}
	if err := s.SetTokens(ctx, tokens); err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	return s.SetUser(ctx, user)
}

// SetTokens replaces the token pair. An empty refresh token keeps the stored one.
func (s *AuthStore) SetTokens(ctx context.Context, tokens entity.AuthTokens) error {
	if err := s.storage.Set(ctx, service.StorageKeyAuthToken, tokens.AccessToken); err != nil {
		return errors.Wrap(err, "failed to store access token")
	}
	if tokens.RefreshToken == "" {
		return nil
	}

	return errors.Wrap(s.storage.Set(ctx, service.StorageKeyRefreshToken, tokens.RefreshToken), "failed to store refresh token")
}

// SetUser caches the logged-in user.
func (s *AuthStore) SetUser(ctx context.Context, user *entity.User) error {
	return saveJSON(ctx, s.storage, service.StorageKeyAuthUser, user)
}

// SelectedClientID returns the client a sales agent selected, nil when none.
func (s *AuthStore) SelectedClientID(ctx context.Context) (*int64, error) {
	raw, err := s.get(ctx, service.StorageKeySelectedClientID)
	if err != nil || raw == "" {
		return nil, err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse selected client id")
	}

	return &id, nil
}

// SelectClient remembers the client a sales agent orders for; nil forgets it.
func (s *AuthStore) SelectClient(ctx context.Context, clientID *int64) error {
	if clientID == nil {
		return errors.Wrap(s.storage.Delete(ctx, service.StorageKeySelectedClientID), "failed to clear selected client")
	}

	return errors.Wrap(
		s.storage.Set(ctx, service.StorageKeySelectedClientID, strconv.FormatInt(*clientID, 10)),
		"failed to store selected client",
	)
}

// Clear logs the session out locally.
func (s *AuthStore) Clear(ctx context.Context) error {
	for _, key := range []string{
		service.StorageKeyAuthToken,
		service.StorageKeyRefreshToken,
		service.StorageKeyAuthUser,
		service.StorageKeySelectedClientID,
	} {
		if err := s.storage.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to delete %s", key)
		}
	}

	return nil
}

func (s *AuthStore) get(ctx context.Context, key string) (string, error) {
	value, _, err := s.storage.Get(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", key)
	}

	return value, nil
}
