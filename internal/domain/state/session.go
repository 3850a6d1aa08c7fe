// Package state holds the storefront state of one browser session: cart,
// authentication, favorites cache and checkout wizard. Every store persists
// through the session's LocalStorage, so handlers stay stateless.
package state

import (
	"context"
	"encoding/json"

	"tradefood/internal/domain/service"
	"tradefood/internal/errors"
)

// Session bundles the stores of one browser session.
type Session struct {
	ID        string
	Cart      *CartStore
	Auth      *AuthStore
	Favorites *FavoriteStore
	Checkout  *CheckoutStore

	storage service.LocalStorage
}

// NewSession builds the stores of sessionID over its local storage.
func NewSession(sessionID string, storage service.LocalStorage) *Session {
	return &Session{
		ID:        sessionID,
		Cart:      &CartStore{storage: storage},
		Auth:      &AuthStore{storage: storage},
		Favorites: &FavoriteStore{storage: storage},
		Checkout:  &CheckoutStore{storage: storage},
		storage:   storage,
	}
}

// Storage returns the raw local storage of the session.
func (s *Session) Storage() service.LocalStorage {
	return s.storage
}

type sessionKey struct{}

// NewContext returns a context carrying sess.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// FromContext returns the session carried by ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*Session)

	return sess, ok && sess != nil
}

// loadJSON decodes key into v. It reports false when the key is absent.
func loadJSON(ctx context.Context, storage service.LocalStorage, key string, v any) (bool, error) {
	raw, ok, err := storage.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", key)
	}
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return true, nil
}

func saveJSON(ctx context.Context, storage service.LocalStorage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	return errors.Wrapf(storage.Set(ctx, key, string(data)), "failed to write %s", key)
}
