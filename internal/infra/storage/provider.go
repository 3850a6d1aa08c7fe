package storage

import (
	"context"
	"log/slog"

	"tradefood/config"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore creates the KeyValueStore selected by configuration
func NewKeyValueStore(params StoreParams) (service.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store service.KeyValueStore

	switch cfg.Provider {
	case config.StorageProviderMemory:
		logger.Info("Using in-memory session storage")

		store = NewMemoryStore()

	case config.StorageProviderRedis:
		redisStore, err := DialRedisStore(params.Ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis session storage",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("db", cfg.Redis.DB),
		)

		store = redisStore

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing session storage")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
