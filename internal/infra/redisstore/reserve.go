// Package redisstore holds the Redis-backed stores of the flash-sale core:
// the atomic reservation script, stock pre-warming, the session hash store
// and the like ranking.
package redisstore

import (
	"context"
	"strconv"

	"flashsale-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Reservation outcomes returned by the atomic script.
const (
	ReserveOK                = 0
	ReserveInsufficientStock = 1
	ReserveDuplicate         = 2
)

const (
	stockKeyPrefix = "seckill:stock:"
	orderKeyPrefix = "seckill:order:"
)

// reserveScript checks stock and per-user dedup and applies the decrement in
// one indivisible step, so no interleaving between check and mutation is
// possible across concurrent callers.
var reserveScript = redis.NewScript(`
local voucherId = ARGV[1]
local userId = ARGV[2]
local stockKey = 'seckill:stock:' .. voucherId
local orderKey = 'seckill:order:' .. voucherId

if tonumber(redis.call('get', stockKey) or '0') <= 0 then
    return 1
end
if redis.call('sismember', orderKey, userId) == 1 then
    return 2
end

redis.call('incrby', stockKey, -1)
redis.call('sadd', orderKey, userId)
return 0
`)

// ReserveStore performs the fast-path eligibility-and-reservation check
// against Redis.
type ReserveStore struct {
	client *redis.Client
}

func NewReserveStore(client *redis.Client) *ReserveStore {
	return &ReserveStore{client: client}
}

// Reserve runs the atomic reservation script. The returned code is one of
// ReserveOK, ReserveInsufficientStock or ReserveDuplicate.
func (s *ReserveStore) Reserve(ctx context.Context, voucherID, userID int64) (int, error) {
	res, err := reserveScript.Run(ctx, s.client, []string{},
		strconv.FormatInt(voucherID, 10),
		strconv.FormatInt(userID, 10),
	).Int()
	if err != nil {
		return 0, errs.Wrapf(err, "failed to run reservation script for voucher %d", voucherID)
	}
	return res, nil
}

// PrewarmStock seeds the Redis stock counter for a voucher from its durable
// stock value. Must run before the sale window opens.
func (s *ReserveStore) PrewarmStock(ctx context.Context, voucherID int64, stock int32) error {
	key := stockKeyPrefix + strconv.FormatInt(voucherID, 10)
	if err := s.client.Set(ctx, key, int64(stock), 0).Err(); err != nil {
		return errs.Wrapf(err, "failed to prewarm stock for voucher %d", voucherID)
	}
	return nil
}
