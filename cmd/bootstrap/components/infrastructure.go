package components

import (
	"context"
	"log/slog"

	"flashsale-core/internal/cache"
	"flashsale-core/internal/idgen"
	"flashsale-core/internal/lock"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		clock.NewRealClock,
		lock.NewFactory,
		NewRebuildPool,
		NewCacheClient,
		NewIDGenerator,
	),
)

func NewRebuildPool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.RebuildPool {
	pool := cache.NewRebuildPool(cfg.Cache.RebuildWorkers, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			pool.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			pool.Stop()
			return nil
		},
	})

	return pool
}

func NewCacheClient(
	rdb *redis.Client,
	locks *lock.Factory,
	pool *cache.RebuildPool,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *cache.Client {
	return cache.NewClient(rdb, locks, pool, clk, logger, cache.Options{
		NullTTL:        cfg.Cache.NullTTL,
		RebuildLockTTL: cfg.Cache.RebuildLockTTL,
	})
}

func NewIDGenerator(rdb *redis.Client, clk clock.Clock) *idgen.Generator {
	return idgen.NewGenerator(rdb, clk)
}
