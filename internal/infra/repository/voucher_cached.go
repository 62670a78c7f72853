package repository

import (
	"context"
	"errors"
	"time"

	"flashsale-core/internal/cache"
	"flashsale-core/internal/infra"
	"flashsale-core/internal/usecase/readmodel"
)

const (
	voucherCacheKeyPrefix = "cache:seckill:voucher:"
	voucherCacheTTL       = 30 * time.Minute
)

// CachedVoucherReader reads voucher metadata through the cache-aside
// pass-through strategy: misses hit the durable row, nonexistent ids leave
// a short-lived empty sentinel behind.
type CachedVoucherReader struct {
	repo  *VoucherRepository
	cache *cache.Client
}

func NewCachedVoucherReader(repo *VoucherRepository, cacheClient *cache.Client) *CachedVoucherReader {
	return &CachedVoucherReader{repo: repo, cache: cacheClient}
}

func (r *CachedVoucherReader) SeckillVoucher(ctx context.Context, voucherID int64) (*readmodel.SeckillVoucherRM, error) {
	rm, err := cache.GetWithPassThrough(ctx, r.cache, voucherCacheKeyPrefix, voucherID, voucherCacheTTL, r.fetch)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, infra.WrapRepoErr("seckill voucher not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return rm, nil
}

func (r *CachedVoucherReader) fetch(ctx context.Context, voucherID int64) (*readmodel.SeckillVoucherRM, error) {
	rm, err := r.repo.FindSeckillVoucher(ctx, voucherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rm, nil
}
