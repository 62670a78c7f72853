package usecase

import (
	"context"
	"errors"
	"log/slog"

	"flashsale-core/internal/domain/voucher"
	"flashsale-core/internal/infra"
	"flashsale-core/internal/infra/redisstore"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/errs"
	"flashsale-core/internal/usecase/readmodel"
)

var (
	ErrVoucherNotFound   = errors.New("voucher not found")
	ErrNotStarted        = errors.New("flash sale has not started")
	ErrEnded             = errors.New("flash sale has ended")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateOrder    = errors.New("duplicate order")
	ErrSystemBusy        = errors.New("system busy")

	// Error markers for categorization
	ErrReservationFailed = errors.New("reservation check failed")
)

type VoucherReader interface {
	SeckillVoucher(ctx context.Context, voucherID int64) (*readmodel.SeckillVoucherRM, error)
}

type ReserveStore interface {
	Reserve(ctx context.Context, voucherID, userID int64) (int, error)
	PrewarmStock(ctx context.Context, voucherID int64, stock int32) error
}

type IDGenerator interface {
	NextID(ctx context.Context, prefix string) (int64, error)
}

type SeckillUseCase interface {
	// Reserve runs the fast admission path: window check, atomic
	// stock-and-dedup reservation, id allocation and enqueue. It returns
	// the order id without waiting for durable persistence.
	Reserve(ctx context.Context, userID, voucherID int64) (int64, error)
	// PrewarmVoucher seeds the Redis stock counter from the durable stock
	// value. Must run before the sale window opens.
	PrewarmVoucher(ctx context.Context, voucherID int64) error
}

type seckillUseCaseImpl struct {
	vouchers VoucherReader
	reserve  ReserveStore
	idgen    IDGenerator
	queue    *OrderQueue
	clock    clock.Clock
	logger   *slog.Logger
}

func NewSeckillUseCase(
	vouchers VoucherReader,
	reserve ReserveStore,
	idgen IDGenerator,
	queue *OrderQueue,
	clk clock.Clock,
	logger *slog.Logger,
) SeckillUseCase {
	return &seckillUseCaseImpl{
		vouchers: vouchers,
		reserve:  reserve,
		idgen:    idgen,
		queue:    queue,
		clock:    clk,
		logger:   logger,
	}
}

func (s *seckillUseCaseImpl) Reserve(ctx context.Context, userID, voucherID int64) (int64, error) {
	v, err := s.loadVoucher(ctx, voucherID)
	if err != nil {
		return 0, err
	}

	// Window check runs against wall-clock at call time, never a cached
	// verdict.
	if err := v.ValidateWindow(s.clock.Now()); err != nil {
		switch {
		case errors.Is(err, voucher.ErrNotStarted):
			return 0, ErrNotStarted
		case errors.Is(err, voucher.ErrEnded):
			return 0, ErrEnded
		default:
			return 0, errs.Wrap(err, "voucher window validation failed")
		}
	}

	result, err := s.reserve.Reserve(ctx, voucherID, userID)
	if err != nil {
		return 0, errs.Mark(err, ErrReservationFailed)
	}
	switch result {
	case redisstore.ReserveOK:
	case redisstore.ReserveInsufficientStock:
		return 0, ErrInsufficientStock
	case redisstore.ReserveDuplicate:
		return 0, ErrDuplicateOrder
	default:
		return 0, errs.New("unexpected reservation script result")
	}

	orderID, err := s.idgen.NextID(ctx, "order")
	if err != nil {
		return 0, errs.Wrap(err, "failed to allocate order id")
	}

	task := OrderTask{OrderID: orderID, UserID: userID, VoucherID: voucherID}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		if errors.Is(err, ErrQueueFull) {
			// The reservation is already taken in Redis; dropping here
			// loses an accepted order, so it is alerted as an overflow.
			s.logger.Error("order queue overflow, dropping accepted reservation",
				"order_id", orderID,
				"user_id", userID,
				"voucher_id", voucherID)
			return 0, ErrSystemBusy
		}
		return 0, err
	}

	return orderID, nil
}

func (s *seckillUseCaseImpl) PrewarmVoucher(ctx context.Context, voucherID int64) error {
	v, err := s.loadVoucher(ctx, voucherID)
	if err != nil {
		return err
	}
	return s.reserve.PrewarmStock(ctx, voucherID, v.Stock())
}

func (s *seckillUseCaseImpl) loadVoucher(ctx context.Context, voucherID int64) (*voucher.SeckillVoucher, error) {
	rm, err := s.vouchers.SeckillVoucher(ctx, voucherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, errs.Wrap(err, "failed to load seckill voucher")
	}

	v, err := voucher.NewSeckillVoucher(rm.VoucherID, rm.Stock, rm.BeginTime, rm.EndTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid voucher data")
	}
	return v, nil
}
