//go:build e2e

package order_test

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flashsale-core/internal/cache"
	"flashsale-core/internal/idgen"
	"flashsale-core/internal/infra/redisstore"
	"flashsale-core/internal/infra/repository"
	"flashsale-core/internal/lock"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/usecase"
	"flashsale-core/internal/usecase/readmodel"
	"flashsale-core/internal/usecase/shared"
	"flashsale-core/internal/worker"
	"flashsale-core/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// orderSuite は受付パイプラインから永続化ワーカーまでを実スタックで検証する
type orderSuite struct {
	e2e.DBSuite
	queue   *usecase.OrderQueue
	seckill usecase.SeckillUseCase
	shops   usecase.ShopUseCase
	worker  *worker.OrderWorker
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupSuite() {
	s.DBSuite.SetupSuite()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewRealClock()
	locks := lock.NewFactory(s.Redis)

	pool := cache.NewRebuildPool(s.Config.Cache.RebuildWorkers, logger)
	pool.Start()
	s.T().Cleanup(pool.Stop)
	cacheClient := cache.NewClient(s.Redis, locks, pool, clk, logger, cache.Options{
		NullTTL:        s.Config.Cache.NullTTL,
		RebuildLockTTL: s.Config.Cache.RebuildLockTTL,
	})

	vouchers := repository.NewVoucherRepository(s.Pool)
	orders := repository.NewOrderRepository(s.Pool)
	txRunner := shared.NewPgxTxRunner(s.Pool)

	s.queue = usecase.NewOrderQueue(s.Config.Seckill.QueueCapacity, s.Config.Seckill.BlockOnFull)
	s.seckill = usecase.NewSeckillUseCase(
		repository.NewCachedVoucherReader(vouchers, cacheClient),
		redisstore.NewReserveStore(s.Redis),
		idgen.NewGenerator(s.Redis, clk),
		s.queue,
		clk,
		logger,
	)
	s.shops = usecase.NewShopUseCase(repository.NewShopRepository(s.Pool), cacheClient, txRunner)

	s.worker = worker.NewOrderWorker(
		s.queue, locks, txRunner, orders, vouchers, clk, logger,
		s.Config.Seckill.UserLockTTL,
	)
	s.worker.Start()
	s.T().Cleanup(s.worker.Stop)
}

func (s *orderSuite) insertVoucher(voucherID int64, stock int32, begin, end time.Time) {
	_, err := s.Pool.Exec(s.T().Context(),
		"INSERT INTO seckill_vouchers (voucher_id, stock, begin_time, end_time) VALUES ($1, $2, $3, $4)",
		voucherID, stock, begin, end)
	require.NoError(s.T(), err)
}

func (s *orderSuite) countOrders(voucherID int64) int {
	var n int
	err := s.Pool.QueryRow(s.T().Context(),
		"SELECT count(*) FROM voucher_orders WHERE voucher_id = $1", voucherID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *orderSuite) durableStock(voucherID int64) int32 {
	var stock int32
	err := s.Pool.QueryRow(s.T().Context(),
		"SELECT stock FROM seckill_vouchers WHERE voucher_id = $1", voucherID).Scan(&stock)
	require.NoError(s.T(), err)
	return stock
}

func (s *orderSuite) TestReservePipeline() {
	now := time.Now()

	s.Run("受付から永続化まで一気通貫で流れる", func() {
		ctx := s.T().Context()
		const voucherID = int64(10)
		s.insertVoucher(voucherID, 5, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(s.T(), s.seckill.PrewarmVoucher(ctx, voucherID))

		orderID, err := s.seckill.Reserve(ctx, 1001, voucherID)
		require.NoError(s.T(), err)
		require.Positive(s.T(), orderID)

		// ワーカーが非同期に書き込むので行が現れるまで待つ
		require.Eventually(s.T(), func() bool {
			return s.countOrders(voucherID) == 1
		}, 5*time.Second, 50*time.Millisecond)
		require.Equal(s.T(), int32(4), s.durableStock(voucherID))

		var gotID int64
		err = s.Pool.QueryRow(ctx,
			"SELECT id FROM voucher_orders WHERE user_id = 1001 AND voucher_id = $1", voucherID).Scan(&gotID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), orderID, gotID)
	})

	s.Run("同一ユーザーの2回目は重複として弾かれる", func() {
		ctx := s.T().Context()
		const voucherID = int64(11)
		s.insertVoucher(voucherID, 5, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(s.T(), s.seckill.PrewarmVoucher(ctx, voucherID))

		_, err := s.seckill.Reserve(ctx, 1001, voucherID)
		require.NoError(s.T(), err)
		_, err = s.seckill.Reserve(ctx, 1001, voucherID)
		require.ErrorIs(s.T(), err, usecase.ErrDuplicateOrder)

		require.Eventually(s.T(), func() bool {
			return s.countOrders(voucherID) == 1
		}, 5*time.Second, 50*time.Millisecond)
	})

	s.Run("在庫を超える同時リクエストは在庫数ちょうどで締め切られる", func() {
		ctx := s.T().Context()
		const (
			voucherID = int64(12)
			stock     = int32(3)
			users     = 8
		)
		s.insertVoucher(voucherID, stock, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(s.T(), s.seckill.PrewarmVoucher(ctx, voucherID))

		var accepted, soldOut atomic.Int32
		var wg sync.WaitGroup
		for i := range users {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				_, err := s.seckill.Reserve(ctx, userID, voucherID)
				switch {
				case err == nil:
					accepted.Add(1)
				default:
					require.ErrorIs(s.T(), err, usecase.ErrInsufficientStock)
					soldOut.Add(1)
				}
			}(int64(2000 + i))
		}
		wg.Wait()

		require.Equal(s.T(), stock, accepted.Load())
		require.Equal(s.T(), int32(users)-stock, soldOut.Load())

		require.Eventually(s.T(), func() bool {
			return s.countOrders(voucherID) == int(stock)
		}, 10*time.Second, 50*time.Millisecond)
		require.Equal(s.T(), int32(0), s.durableStock(voucherID))
	})

	s.Run("販売期間外は在庫に触れず弾かれる", func() {
		ctx := s.T().Context()

		const notStartedID = int64(13)
		s.insertVoucher(notStartedID, 5, now.Add(time.Hour), now.Add(2*time.Hour))
		require.NoError(s.T(), s.seckill.PrewarmVoucher(ctx, notStartedID))
		_, err := s.seckill.Reserve(ctx, 1001, notStartedID)
		require.ErrorIs(s.T(), err, usecase.ErrNotStarted)

		const endedID = int64(14)
		s.insertVoucher(endedID, 5, now.Add(-2*time.Hour), now.Add(-time.Hour))
		require.NoError(s.T(), s.seckill.PrewarmVoucher(ctx, endedID))
		_, err = s.seckill.Reserve(ctx, 1001, endedID)
		require.ErrorIs(s.T(), err, usecase.ErrEnded)

		// 在庫キーはプレウォーム値のまま
		stock, err := s.Redis.Get(ctx, "seckill:stock:13").Int()
		require.NoError(s.T(), err)
		require.Equal(s.T(), 5, stock)
	})

	s.Run("存在しないバウチャーはNotFound", func() {
		ctx := s.T().Context()
		_, err := s.seckill.Reserve(ctx, 1001, 999)
		require.ErrorIs(s.T(), err, usecase.ErrVoucherNotFound)
	})
}

func (s *orderSuite) TestShopReadPath() {
	s.Run("プレウォーム後の読みはキャッシュから返る", func() {
		ctx := s.T().Context()

		var shopID int64
		err := s.Pool.QueryRow(ctx,
			"INSERT INTO shops (name, address) VALUES ('cafe', 'street 1') RETURNING id").Scan(&shopID)
		require.NoError(s.T(), err)

		// 未ウォームの読みはNotFound
		_, err = s.shops.GetShop(ctx, shopID)
		require.ErrorIs(s.T(), err, usecase.ErrShopNotFound)

		require.NoError(s.T(), s.shops.PrewarmShop(ctx, shopID))
		got, err := s.shops.GetShop(ctx, shopID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), "cafe", got.Name)
	})

	s.Run("更新は書き込み後にキャッシュを無効化する", func() {
		ctx := s.T().Context()

		var shopID int64
		err := s.Pool.QueryRow(ctx,
			"INSERT INTO shops (name, address) VALUES ('cafe', 'street 1') RETURNING id").Scan(&shopID)
		require.NoError(s.T(), err)
		require.NoError(s.T(), s.shops.PrewarmShop(ctx, shopID))

		err = s.shops.UpdateShop(ctx, readmodel.ShopRM{ID: shopID, Name: "bistro", Address: "street 2"})
		require.NoError(s.T(), err)

		// 無効化済みなので再ウォームするまではNotFound
		_, err = s.shops.GetShop(ctx, shopID)
		require.ErrorIs(s.T(), err, usecase.ErrShopNotFound)

		require.NoError(s.T(), s.shops.PrewarmShop(ctx, shopID))
		got, err := s.shops.GetShop(ctx, shopID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), "bistro", got.Name)
	})

	s.Run("存在しない店舗の更新はNotFound", func() {
		ctx := s.T().Context()
		err := s.shops.UpdateShop(ctx, readmodel.ShopRM{ID: 99999, Name: "ghost"})
		require.ErrorIs(s.T(), err, usecase.ErrShopNotFound)
	})
}
