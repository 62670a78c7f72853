//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"flashsale-core/internal/domain/order"
	"flashsale-core/internal/infra/db"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/errs"
	"flashsale-core/internal/usecase"
	"flashsale-core/internal/worker"
	lockmock "flashsale-core/tests/mock/lock"
	sharedmock "flashsale-core/tests/mock/shared"
	workermock "flashsale-core/tests/mock/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLockTTL = 10 * time.Second

type workerFixture struct {
	queue    *usecase.OrderQueue
	locks    *workermock.MockLockFactory
	lock     *lockmock.MockLock
	txRunner *sharedmock.MockTxRunner
	orders   *workermock.MockOrderRepository
	vouchers *workermock.MockVoucherRepository
	clock    *clock.MockClock
	worker   *worker.OrderWorker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &workerFixture{
		queue:    usecase.NewOrderQueue(16, false),
		locks:    workermock.NewMockLockFactory(ctrl),
		lock:     lockmock.NewMockLock(ctrl),
		txRunner: sharedmock.NewMockTxRunner(ctrl),
		orders:   workermock.NewMockOrderRepository(ctrl),
		vouchers: workermock.NewMockVoucherRepository(ctrl),
		clock:    clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.worker = worker.NewOrderWorker(
		f.queue, f.locks, f.txRunner, f.orders, f.vouchers, f.clock, logger, testLockTTL)
	return f
}

// passThroughTx makes the mocked runner execute the transactional closure
// directly, so repository expectations inside it are observed.
func (f *workerFixture) passThroughTx() {
	f.txRunner.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		})
}

// runOne starts the worker, waits for the signal fired by the last expected
// mock call, then stops it.
func runOne(t *testing.T, w *worker.OrderWorker, done <-chan struct{}) {
	t.Helper()
	w.Start()
	defer w.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not finish the task in time")
	}
}

func TestOrderWorker(t *testing.T) {
	ctx := context.Background()
	task := usecase.OrderTask{OrderID: 555, UserID: 101, VoucherID: 7}

	t.Run("persists an accepted task", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		f.locks.EXPECT().New("order:101").Return(f.lock)
		f.lock.EXPECT().TryLock(gomock.Any(), testLockTTL).Return(true, nil)
		f.passThroughTx()
		f.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), task.UserID, task.VoucherID).Return(false, nil)
		f.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), task.VoucherID).Return(true, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, o *order.VoucherOrder) error {
				assert.Equal(t, task.OrderID, o.ID())
				assert.Equal(t, task.UserID, o.UserID())
				assert.Equal(t, task.VoucherID, o.VoucherID())
				assert.Equal(t, f.clock.Now(), o.CreatedAt())
				return nil
			})
		f.lock.EXPECT().Unlock(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

		require.NoError(t, f.queue.Enqueue(ctx, task))
		runOne(t, f.worker, done)
	})

	t.Run("drops the task when the user lock is held elsewhere", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		f.locks.EXPECT().New("order:101").Return(f.lock)
		f.lock.EXPECT().TryLock(gomock.Any(), testLockTTL).
			DoAndReturn(func(context.Context, time.Duration) (bool, error) {
				close(done)
				return false, nil
			})
		// No transaction and no unlock: the lock was never ours.

		require.NoError(t, f.queue.Enqueue(ctx, task))
		runOne(t, f.worker, done)
	})

	t.Run("drops the task when lock acquisition errors", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		f.locks.EXPECT().New("order:101").Return(f.lock)
		f.lock.EXPECT().TryLock(gomock.Any(), testLockTTL).
			DoAndReturn(func(context.Context, time.Duration) (bool, error) {
				close(done)
				return false, errs.New("redis unavailable")
			})

		require.NoError(t, f.queue.Enqueue(ctx, task))
		runOne(t, f.worker, done)
	})

	t.Run("skips an order that is already durable", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		f.locks.EXPECT().New("order:101").Return(f.lock)
		f.lock.EXPECT().TryLock(gomock.Any(), testLockTTL).Return(true, nil)
		f.passThroughTx()
		f.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), task.UserID, task.VoucherID).Return(true, nil)
		// Neither stock decrement nor insert may run for a duplicate.
		f.lock.EXPECT().Unlock(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

		require.NoError(t, f.queue.Enqueue(ctx, task))
		runOne(t, f.worker, done)
	})

	t.Run("drops the task when durable stock is exhausted", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		f.locks.EXPECT().New("order:101").Return(f.lock)
		f.lock.EXPECT().TryLock(gomock.Any(), testLockTTL).Return(true, nil)
		f.passThroughTx()
		f.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), task.UserID, task.VoucherID).Return(false, nil)
		f.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), task.VoucherID).Return(false, nil)
		f.lock.EXPECT().Unlock(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

		require.NoError(t, f.queue.Enqueue(ctx, task))
		runOne(t, f.worker, done)
	})

	t.Run("releases the lock even when the insert fails", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		f.locks.EXPECT().New("order:101").Return(f.lock)
		f.lock.EXPECT().TryLock(gomock.Any(), testLockTTL).Return(true, nil)
		f.passThroughTx()
		f.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), task.UserID, task.VoucherID).Return(false, nil)
		f.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), task.VoucherID).Return(true, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("connection reset"))
		f.lock.EXPECT().Unlock(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

		require.NoError(t, f.queue.Enqueue(ctx, task))
		runOne(t, f.worker, done)
	})

	t.Run("keeps consuming after a failed task", func(t *testing.T) {
		f := newWorkerFixture(t)
		done := make(chan struct{})

		failing := usecase.OrderTask{OrderID: 1, UserID: 201, VoucherID: 7}
		healthy := usecase.OrderTask{OrderID: 2, UserID: 202, VoucherID: 7}

		failLock := f.lock
		f.locks.EXPECT().New("order:201").Return(failLock)
		failLock.EXPECT().TryLock(gomock.Any(), testLockTTL).Return(false, nil)

		okLock := lockmock.NewMockLock(gomock.NewController(t))
		f.locks.EXPECT().New("order:202").Return(okLock)
		okLock.EXPECT().TryLock(gomock.Any(), testLockTTL).Return(true, nil)
		f.passThroughTx()
		f.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), healthy.UserID, healthy.VoucherID).Return(false, nil)
		f.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), healthy.VoucherID).Return(true, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		okLock.EXPECT().Unlock(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

		require.NoError(t, f.queue.Enqueue(ctx, failing))
		require.NoError(t, f.queue.Enqueue(ctx, healthy))
		runOne(t, f.worker, done)
	})

	t.Run("stop is safe before start", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.worker.Stop()
	})
}
