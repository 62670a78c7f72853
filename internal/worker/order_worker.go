// Package worker drains the reservation queue and commits accepted orders
// to the durable store. Exactly one worker goroutine consumes the queue.
package worker

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"flashsale-core/internal/domain/order"
	"flashsale-core/internal/infra/db"
	"flashsale-core/internal/lock"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/errs"
	"flashsale-core/internal/usecase"
	"flashsale-core/internal/usecase/shared"
)

const userLockPrefix = "order:"

type LockFactory interface {
	New(name string) lock.Lock
}

type OrderRepository interface {
	ExistsByUserAndVoucher(ctx context.Context, tx db.DBTX, userID, voucherID int64) (bool, error)
	Create(ctx context.Context, tx db.DBTX, o *order.VoucherOrder) error
}

type VoucherRepository interface {
	DecrementStock(ctx context.Context, tx db.DBTX, voucherID int64) (bool, error)
}

// OrderWorker is the single consumer of the order queue. Failed tasks are
// logged and dropped; there is no retry or dead-letter path, the durable
// uniqueness constraint backstops any double delivery.
type OrderWorker struct {
	queue    *usecase.OrderQueue
	locks    LockFactory
	txRunner shared.TxRunner
	orders   OrderRepository
	vouchers VoucherRepository
	clock    clock.Clock
	logger   *slog.Logger
	lockTTL  time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrderWorker(
	queue *usecase.OrderQueue,
	locks LockFactory,
	txRunner shared.TxRunner,
	orders OrderRepository,
	vouchers VoucherRepository,
	clk clock.Clock,
	logger *slog.Logger,
	lockTTL time.Duration,
) *OrderWorker {
	return &OrderWorker{
		queue:    queue,
		locks:    locks,
		txRunner: txRunner,
		orders:   orders,
		vouchers: vouchers,
		clock:    clk,
		logger:   logger,
		lockTTL:  lockTTL,
	}
}

// Start launches the consumer loop. It returns immediately.
func (w *OrderWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop cancels the consumer loop and waits for the in-flight task to
// finish. Tasks still queued are lost, consistent with the drop-on-failure
// durability posture.
func (w *OrderWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	w.wg.Wait()
}

func (w *OrderWorker) run(ctx context.Context) {
	for {
		task, ok := w.queue.Dequeue(ctx)
		if !ok {
			return
		}
		w.handle(ctx, task)
	}
}

func (w *OrderWorker) handle(ctx context.Context, task usecase.OrderTask) {
	// The per-user lock guards against two tasks for the same user being
	// persisted concurrently across instances.
	l := w.locks.New(userLockPrefix + strconv.FormatInt(task.UserID, 10))

	acquired, err := l.TryLock(ctx, w.lockTTL)
	if err != nil {
		w.logger.Error("failed to acquire user lock, dropping order task",
			"order_id", task.OrderID, "user_id", task.UserID, "error", err)
		return
	}
	if !acquired {
		w.logger.Error("user lock held elsewhere, dropping order task",
			"order_id", task.OrderID, "user_id", task.UserID)
		return
	}
	defer func() {
		if err := l.Unlock(ctx); err != nil {
			w.logger.Warn("failed to release user lock",
				"user_id", task.UserID, "error", err)
		}
	}()

	if err := w.persist(ctx, task); err != nil {
		// Known durability gap: the reservation was accepted but could not
		// be persisted. Alert-level log so operators can reconcile.
		w.logger.Error("failed to persist order, task dropped",
			"order_id", task.OrderID,
			"user_id", task.UserID,
			"voucher_id", task.VoucherID,
			"error", err)
		return
	}

	w.logger.Info("order persisted",
		"order_id", task.OrderID,
		"user_id", task.UserID,
		"voucher_id", task.VoucherID)
}

func (w *OrderWorker) persist(ctx context.Context, task usecase.OrderTask) error {
	return w.txRunner.RunInTx(ctx, func(tx db.DBTX) error {
		// Defense in depth: the Redis script already deduped, re-verify at
		// the durable store before writing.
		exists, err := w.orders.ExistsByUserAndVoucher(ctx, tx, task.UserID, task.VoucherID)
		if err != nil {
			return err
		}
		if exists {
			w.logger.Warn("order already persisted, skipping task",
				"user_id", task.UserID, "voucher_id", task.VoucherID)
			return nil
		}

		decremented, err := w.vouchers.DecrementStock(ctx, tx, task.VoucherID)
		if err != nil {
			return err
		}
		if !decremented {
			return errs.New("durable stock exhausted")
		}

		o, err := order.NewVoucherOrder(task.OrderID, task.UserID, task.VoucherID, w.clock.Now())
		if err != nil {
			return err
		}
		return w.orders.Create(ctx, tx, o)
	})
}
