// Package service defines interfaces for collaborators the use cases depend on
// but do not own: storage, the payment provider, token inspection, event publishing.
package service

import (
	"context"
	"time"
)

// Keys of the per-session local storage mirror.
const (
	StorageKeyAuthToken        = "authToken"
	StorageKeyRefreshToken     = "refreshToken"
	StorageKeyAuthUser         = "authUser"
	StorageKeySelectedClientID = "selectedClientId"
	StorageKeyFavorites        = "favorites"
	StorageKeyCart             = "cart"
	StorageKeyCheckout         = "checkout"
)

// KeyValueStore is the shared backing store of every session's local storage.
type KeyValueStore interface {
	// Get returns the value of key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, expiring after ttl (0 keeps it forever).
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store
	Close() error
}

// LocalStorage is the key/value mirror of one browser session, the
// server-side equivalent of window.localStorage.
type LocalStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
