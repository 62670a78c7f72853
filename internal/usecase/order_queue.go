package usecase

import (
	"context"

	"flashsale-core/internal/pkg/errs"
)

// ErrQueueFull reports that the reservation queue rejected a task. With the
// default capacity this is an overflow condition, not a steady-state path.
var ErrQueueFull = errs.New("order queue is full")

// OrderTask carries an accepted reservation from the admission pipeline to
// the persistence worker. The user id travels inside the task because the
// worker cannot read the caller's request context.
type OrderTask struct {
	OrderID   int64
	UserID    int64
	VoucherID int64
}

// OrderQueue is the single hand-off point between request goroutines and
// the persistence worker: requests only enqueue, only the worker dequeues.
type OrderQueue struct {
	tasks       chan OrderTask
	blockOnFull bool
}

func NewOrderQueue(capacity int, blockOnFull bool) *OrderQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &OrderQueue{
		tasks:       make(chan OrderTask, capacity),
		blockOnFull: blockOnFull,
	}
}

// Enqueue adds a task. When the queue is full the configured policy decides:
// block the producer until space frees up, or fail fast with ErrQueueFull.
func (q *OrderQueue) Enqueue(ctx context.Context, task OrderTask) error {
	if q.blockOnFull {
		select {
		case q.tasks <- task:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	select {
	case q.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue blocks until a task is available or ctx is cancelled. The second
// return value is false only on cancellation.
func (q *OrderQueue) Dequeue(ctx context.Context) (OrderTask, bool) {
	select {
	case task := <-q.tasks:
		return task, true
	case <-ctx.Done():
		return OrderTask{}, false
	}
}

func (q *OrderQueue) Len() int {
	return len(q.tasks)
}
