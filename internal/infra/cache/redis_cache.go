// Package cache provides the Redis-backed implementation of the best-effort
// catalog cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const scanBatchSize = 200

// redisCache implements service.Cache on a Redis client. Callers treat every
// error as advisory; this type only translates, it never swallows.
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// noopCache is used when Redis is not configured. Get always misses, writes
// and invalidations succeed silently.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopCache) SetWithTTL(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopCache) DeleteByPrefix(context.Context, string) error {
	return nil
}

// CacheParams holds dependencies for the cache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCache creates the catalog cache. Without a Redis block in the
// configuration the storefront runs uncached.
func NewCache(params CacheParams) (service.Cache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using no-op cache")

		return noopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis cache")

			return client.Close()
		},
	})

	return &redisCache{client: client, logger: params.Logger}, nil
}

// Get returns the cached payload for key, or service.ErrCacheMiss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read cache key")
	}

	return payload, nil
}

// SetWithTTL stores a payload under key for the given duration.
func (c *redisCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cache key")
	}

	return nil
}

// DeleteByPrefix removes every key under the given prefix via SCAN so the
// invalidation never blocks Redis the way KEYS would.
func (c *redisCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()

	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(err, "failed to delete cache keys")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan cache keys")
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrap(err, "failed to delete cache keys")
		}
	}

	return nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCache),
)
