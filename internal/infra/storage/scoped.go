package storage

import (
	"context"
	"time"

	"tradefood/internal/domain/service"
)

// scopedStorage is the LocalStorage view of one session over a shared store.
type scopedStorage struct {
	store     service.KeyValueStore
	sessionID string
	ttl       time.Duration
}

// Scoped returns the local storage of sessionID. Keys are namespaced as
// "<sessionID>:<key>" and every write refreshes the entry's ttl.
func Scoped(store service.KeyValueStore, sessionID string, ttl time.Duration) service.LocalStorage {
	return &scopedStorage{
		store:     store,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func (s *scopedStorage) key(key string) string {
	return s.sessionID + ":" + key
}

func (s *scopedStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.key(key))
}

func (s *scopedStorage) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.key(key), value, s.ttl)
}

func (s *scopedStorage) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.key(key))
}
