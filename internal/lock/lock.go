// Package lock implements mutual exclusion across process instances backed
// by a shared Redis store. Acquisition is non-blocking; callers decide their
// own wait policy. The TTL bounds how long a crashed holder can block others.
package lock

import (
	"context"
	"time"

	"flashsale-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// unlockScript deletes the lock key only when it still holds the caller's
// own token. Running the compare and the delete as one script closes the
// race between a TTL expiry and a slow holder's release.
var unlockScript = redis.NewScript(`
if redis.call('get', KEYS[1]) == ARGV[1] then
    return redis.call('del', KEYS[1])
end
return 0
`)

type Lock interface {
	// TryLock attempts a single set-if-absent with TTL. It never retries.
	TryLock(ctx context.Context, ttl time.Duration) (bool, error)
	// Unlock releases the lock if this instance still owns it. Releasing a
	// lock owned by someone else (or already expired) is a no-op.
	Unlock(ctx context.Context) error
}

type Factory struct {
	client *redis.Client
}

func NewFactory(client *redis.Client) *Factory {
	return &Factory{client: client}
}

// New creates a lock handle for the named resource. Each handle carries its
// own owner token; only the handle that acquired the lock can release it.
func (f *Factory) New(name string) Lock {
	return &redisLock{
		client: f.client,
		key:    keyPrefix + name,
		token:  uuid.NewString(),
	}
}

type redisLock struct {
	client *redis.Client
	key    string
	token  string
}

func (l *redisLock) TryLock(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, l.token, ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "failed to acquire lock %q", l.key)
	}
	return ok, nil
}

func (l *redisLock) Unlock(ctx context.Context) error {
	err := unlockScript.Run(ctx, l.client, []string{l.key}, l.token).Err()
	if err != nil && err != redis.Nil {
		return errs.Wrapf(err, "failed to release lock %q", l.key)
	}
	return nil
}
