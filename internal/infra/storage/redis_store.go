package storage

import (
	"context"
	"time"

	"tradefood/config"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a KeyValueStore backed by Redis, shared by every storefront instance.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

var _ service.KeyValueStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client. Every key is prefixed with keyPrefix.
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// DialRedisStore connects to Redis and checks the connection.
func DialRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, errors.New("storage.redis.addr is required for the redis provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	return NewRedisStore(client, cfg.KeyPrefix), nil
}

func (s *RedisStore) key(key string) string {
	return s.keyPrefix + key
}

// Get implements service.KeyValueStore.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "redis get failed")
	}

	return value, true, nil
}

// Set implements service.KeyValueStore.
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// Delete implements service.KeyValueStore.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

// Close implements service.KeyValueStore.
func (s *RedisStore) Close() error {
	return errors.Wrap(s.client.Close(), "redis close failed")
}
