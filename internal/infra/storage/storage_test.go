package storage

import (
	"context"
	"testing"
	"time"

	"tradefood/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	now = now.Add(59 * time.Second)
	_, ok, _ := store.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestScoped_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := Scoped(store, "session-a", time.Hour)
	b := Scoped(store, "session-b", time.Hour)

	require.NoError(t, a.Set(ctx, "cart", `{"items":[]}`))

	_, ok, err := b.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	raw, ok, _ := store.Get(ctx, "session-a:cart")
	assert.True(t, ok)
	assert.JSONEq(t, `{"items":[]}`, raw)
}

func TestRedisStore_PrefixAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, "tradefood:session:")
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	local := Scoped(store, "abc", time.Hour)

	require.NoError(t, local.Set(ctx, "authToken", "token-1"))

	assert.Equal(t, "token-1", mustGet(t, mr, "tradefood:session:abc:authToken"))
	assert.Equal(t, time.Hour, mr.TTL("tradefood:session:abc:authToken"))

	value, ok, err := local.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", value)

	mr.FastForward(2 * time.Hour)
	_, ok, err = local.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_MissingKeyIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, store.Delete(context.Background(), "nothing"))
}

func TestDialRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := DialRedisStore(context.Background(), config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "p:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(context.Background(), "k", "v", 0))
	assert.Equal(t, "v", mustGet(t, mr, "p:k"))

	_, err = DialRedisStore(context.Background(), config.RedisConfig{})
	assert.Error(t, err)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()

	value, err := mr.Get(key)
	require.NoError(t, err)

	return value
}
