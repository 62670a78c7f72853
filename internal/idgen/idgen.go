// Package idgen produces globally unique, time-ordered 64-bit identifiers.
// The high 32 bits are seconds since a fixed epoch, the low 32 bits a
// per-day Redis counter, so ids generated by any instance sharing the same
// store never repeat and never decrease within a prefix.
package idgen

import (
	"context"
	"time"

	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// epoch is 2022-01-01T00:00:00Z. The 31-bit seconds offset lasts until 2090.
const epoch int64 = 1640995200

const counterBits = 32

type Generator struct {
	client *redis.Client
	clock  clock.Clock
}

func NewGenerator(client *redis.Client, clk clock.Clock) *Generator {
	return &Generator{client: client, clock: clk}
}

// NextID returns the next identifier for the given business prefix.
// The counter key rotates daily so the sequence component stays far below
// 32 bits even at very high throughput.
func (g *Generator) NextID(ctx context.Context, prefix string) (int64, error) {
	now := g.clock.Now().UTC()

	key := "icr:" + prefix + ":" + now.Format("2006:01:02")
	seq, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errs.Wrapf(err, "failed to increment id counter %q", key)
	}

	return Compose(now, seq), nil
}

// Compose builds an id from a wall-clock instant and a daily sequence number.
func Compose(now time.Time, seq int64) int64 {
	timestamp := now.Unix() - epoch
	return timestamp<<counterBits | seq
}
