// Package cache implements cache-aside read-through helpers over Redis with
// three failure-mode strategies: pass-through with null caching (penetration
// protection), mutex-protected rebuild, and logical-expiration rebuild
// (breakdown protection).
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"flashsale-core/internal/infra"
	"flashsale-core/internal/lock"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports that neither the cache nor the backing loader has a
// value for the key. A cached empty sentinel also resolves to ErrNotFound.
var ErrNotFound = errs.New("cache: value not found")

const rebuildLockPrefix = "cache:rebuild:"

// redisData wraps a payload with an application-managed expiry so reads can
// serve stale data while a background rebuild refreshes it.
type redisData struct {
	Data     json.RawMessage `json:"data"`
	ExpireAt time.Time       `json:"expireAt"`
}

type Client struct {
	rdb     *redis.Client
	locks   *lock.Factory
	pool    *RebuildPool
	clock   clock.Clock
	logger  *slog.Logger
	nullTTL time.Duration
	lockTTL time.Duration
}

type Options struct {
	NullTTL        time.Duration
	RebuildLockTTL time.Duration
}

func NewClient(
	rdb *redis.Client,
	locks *lock.Factory,
	pool *RebuildPool,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Client {
	return &Client{
		rdb:     rdb,
		locks:   locks,
		pool:    pool,
		clock:   clk,
		logger:  logger,
		nullTTL: opts.NullTTL,
		lockTTL: opts.RebuildLockTTL,
	}
}

// Set serializes the value and stores it under key with a store-level TTL.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "failed to marshal cache value for %q", key)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return errs.Wrapf(err, "failed to set cache key %q", key)
	}
	return nil
}

// SetWithLogicalExpire stores the value wrapped with an embedded expiry and
// no store-level TTL. Used to pre-warm keys read via GetWithLogicalExpire.
func (c *Client) SetWithLogicalExpire(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "failed to marshal cache value for %q", key)
	}
	wrapper, err := json.Marshal(redisData{
		Data:     payload,
		ExpireAt: c.clock.Now().Add(ttl),
	})
	if err != nil {
		return errs.Wrapf(err, "failed to marshal cache wrapper for %q", key)
	}
	if err := c.rdb.Set(ctx, key, wrapper, 0).Err(); err != nil {
		return errs.Wrapf(err, "failed to set cache key %q", key)
	}
	return nil
}

// Delete removes a key, typically to invalidate after a durable update.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return errs.Wrapf(err, "failed to delete cache key %q", key)
	}
	return nil
}

// GetWithPassThrough reads through the cache, calling fetch on a miss.
// A loader that yields nothing stores an empty sentinel with a short TTL so
// repeated lookups for nonexistent ids stop reaching the backing store.
func GetWithPassThrough[T any, ID any](
	ctx context.Context,
	c *Client,
	keyPrefix string,
	id ID,
	ttl time.Duration,
	fetch func(ctx context.Context, id ID) (*T, error),
) (*T, error) {
	key := fmt.Sprintf("%s%v", keyPrefix, id)

	raw, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		if raw == "" {
			// Cached "not found" sentinel.
			return nil, ErrNotFound
		}
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, infra.WrapRepoErr("malformed cache payload at "+key, err, infra.KindUnmarshal)
		}
		return &value, nil
	case err != redis.Nil:
		return nil, errs.Wrapf(err, "failed to read cache key %q", key)
	}

	value, err := fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if value == nil {
		if err := c.rdb.Set(ctx, key, "", c.nullTTL).Err(); err != nil {
			return nil, errs.Wrapf(err, "failed to cache empty sentinel for %q", key)
		}
		return nil, ErrNotFound
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		return nil, err
	}
	return value, nil
}

// GetWithLogicalExpire reads a pre-warmed key wrapped with an embedded
// expiry. A stale hit returns the old value immediately and hands the
// rebuild to the worker pool; the per-key rebuild lock keeps it to at most
// one rebuild at a time. An absent key means the data was never warmed and
// resolves to ErrNotFound without touching the store.
func GetWithLogicalExpire[T any, ID any](
	ctx context.Context,
	c *Client,
	keyPrefix string,
	id ID,
	ttl time.Duration,
	fetch func(ctx context.Context, id ID) (*T, error),
) (*T, error) {
	key := fmt.Sprintf("%s%v", keyPrefix, id)

	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read cache key %q", key)
	}
	if raw == "" {
		return nil, ErrNotFound
	}

	var wrapper redisData
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, infra.WrapRepoErr("malformed cache wrapper at "+key, err, infra.KindUnmarshal)
	}
	var value T
	if err := json.Unmarshal(wrapper.Data, &value); err != nil {
		return nil, infra.WrapRepoErr("malformed cache payload at "+key, err, infra.KindUnmarshal)
	}

	if wrapper.ExpireAt.After(c.clock.Now()) {
		return &value, nil
	}

	c.tryRebuild(ctx, key, func(taskCtx context.Context) error {
		fresh, err := fetch(taskCtx, id)
		if err != nil {
			return err
		}
		if fresh == nil {
			// Logical-expiration keys are pre-warmed; a vanished row is
			// handled by invalidation, not by caching emptiness here.
			return nil
		}
		return c.SetWithLogicalExpire(taskCtx, key, fresh, ttl)
	})

	return &value, nil
}

// tryRebuild schedules one background rebuild for key if no other caller is
// already rebuilding it. The rebuild lock is released on every exit path.
func (c *Client) tryRebuild(ctx context.Context, key string, rebuild func(ctx context.Context) error) {
	l := c.locks.New(rebuildLockPrefix + key)
	acquired, err := l.TryLock(ctx, c.lockTTL)
	if err != nil {
		c.logger.Warn("failed to acquire cache rebuild lock", "key", key, "error", err)
		return
	}
	if !acquired {
		return
	}

	submitted := c.pool.Submit(func(taskCtx context.Context) {
		defer func() {
			if err := l.Unlock(taskCtx); err != nil {
				c.logger.Warn("failed to release cache rebuild lock", "key", key, "error", err)
			}
		}()
		if err := rebuild(taskCtx); err != nil {
			c.logger.Error("cache rebuild failed", "key", key, "error", err)
		}
	})
	if !submitted {
		if err := l.Unlock(ctx); err != nil {
			c.logger.Warn("failed to release cache rebuild lock", "key", key, "error", err)
		}
	}
}

// GetWithMutex reads through the cache but serializes rebuilds behind the
// per-key lock: a miss that loses the lock race waits and retries instead of
// stampeding the backing store.
func GetWithMutex[T any, ID any](
	ctx context.Context,
	c *Client,
	keyPrefix string,
	id ID,
	ttl time.Duration,
	fetch func(ctx context.Context, id ID) (*T, error),
) (*T, error) {
	key := fmt.Sprintf("%s%v", keyPrefix, id)

	for {
		raw, err := c.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			if raw == "" {
				return nil, ErrNotFound
			}
			var value T
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				return nil, infra.WrapRepoErr("malformed cache payload at "+key, err, infra.KindUnmarshal)
			}
			return &value, nil
		case err != redis.Nil:
			return nil, errs.Wrapf(err, "failed to read cache key %q", key)
		}

		l := c.locks.New(rebuildLockPrefix + key)
		acquired, err := l.TryLock(ctx, c.lockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(50 * time.Millisecond):
			}
			continue
		}

		value, err := rebuildUnderMutex(ctx, c, key, id, ttl, fetch)
		unlockErr := l.Unlock(ctx)
		if err != nil {
			return nil, err
		}
		if unlockErr != nil {
			c.logger.Warn("failed to release cache rebuild lock", "key", key, "error", unlockErr)
		}
		if value == nil {
			return nil, ErrNotFound
		}
		return value, nil
	}
}

func rebuildUnderMutex[T any, ID any](
	ctx context.Context,
	c *Client,
	key string,
	id ID,
	ttl time.Duration,
	fetch func(ctx context.Context, id ID) (*T, error),
) (*T, error) {
	// Another caller may have rebuilt the key while we waited for the lock.
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		if raw == "" {
			return nil, nil
		}
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, infra.WrapRepoErr("malformed cache payload at "+key, err, infra.KindUnmarshal)
		}
		return &value, nil
	}
	if err != redis.Nil {
		return nil, errs.Wrapf(err, "failed to read cache key %q", key)
	}

	value, err := fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if value == nil {
		if err := c.rdb.Set(ctx, key, "", c.nullTTL).Err(); err != nil {
			return nil, errs.Wrapf(err, "failed to cache empty sentinel for %q", key)
		}
		return nil, nil
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		return nil, err
	}
	return value, nil
}
