package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flashsale-core/internal/cache"
	"flashsale-core/internal/infra"
	"flashsale-core/internal/infra/db"
	"flashsale-core/internal/pkg/errs"
	"flashsale-core/internal/usecase/readmodel"
	"flashsale-core/internal/usecase/shared"
)

var ErrShopNotFound = errors.New("shop not found")

const (
	shopCacheKeyPrefix = "cache:shop:"
	shopCacheTTL       = 30 * time.Minute
)

type ShopRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	Update(ctx context.Context, tx db.DBTX, shop readmodel.ShopRM) error
}

// ShopUseCase is the cache engine's production read path: logically-expired
// reads that never block the caller, and writes that invalidate after
// commit.
type ShopUseCase interface {
	GetShop(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	UpdateShop(ctx context.Context, shop readmodel.ShopRM) error
	PrewarmShop(ctx context.Context, id int64) error
}

type shopUseCaseImpl struct {
	shops    ShopRepository
	cache    *cache.Client
	txRunner shared.TxRunner
}

func NewShopUseCase(shops ShopRepository, cacheClient *cache.Client, txRunner shared.TxRunner) ShopUseCase {
	return &shopUseCaseImpl{
		shops:    shops,
		cache:    cacheClient,
		txRunner: txRunner,
	}
}

func (s *shopUseCaseImpl) GetShop(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	rm, err := cache.GetWithLogicalExpire(ctx, s.cache, shopCacheKeyPrefix, id, shopCacheTTL, s.fetchShop)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, errs.Wrap(err, "failed to read shop")
	}
	return rm, nil
}

// UpdateShop writes the row and then drops the cache entry, so the next
// read repopulates from the fresh row.
func (s *shopUseCaseImpl) UpdateShop(ctx context.Context, shop readmodel.ShopRM) error {
	err := s.txRunner.RunInTx(ctx, func(tx db.DBTX) error {
		return s.shops.Update(ctx, tx, shop)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return errs.Wrap(err, "failed to update shop")
	}

	return s.cache.Delete(ctx, shopCacheKey(shop.ID))
}

// PrewarmShop loads the row and stores it wrapped with a logical expiry.
// Logical-expiration reads assume pre-warmed keys.
func (s *shopUseCaseImpl) PrewarmShop(ctx context.Context, id int64) error {
	rm, err := s.shops.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return errs.Wrap(err, "failed to load shop for prewarm")
	}
	return s.cache.SetWithLogicalExpire(ctx, shopCacheKey(id), rm, shopCacheTTL)
}

func shopCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", shopCacheKeyPrefix, id)
}

func (s *shopUseCaseImpl) fetchShop(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	rm, err := s.shops.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rm, nil
}
