package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"soundwave/internal/config"
	mem "soundwave/pkg/memcache"
)

// NewCacheStore returns a Redis-backed store when REDIS_ADDR is set and a
// process-local store otherwise.
func NewCacheStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.Store, error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-memory cache")
		return mem.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
			}
			log.Info("Redis connected", zap.String("addr", cfg.RedisAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return mem.NewRedisStore(client, "soundwave:"), nil
}
