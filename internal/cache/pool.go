package cache

import (
	"context"
	"log/slog"
	"sync"
)

// RebuildPool runs cache rebuild tasks on a fixed set of workers. It is a
// long-lived service object constructed once at process start; callers hold
// a reference instead of reaching for package-level state.
type RebuildPool struct {
	tasks   chan func(ctx context.Context)
	workers int
	logger  *slog.Logger

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewRebuildPool(workers int, logger *slog.Logger) *RebuildPool {
	if workers <= 0 {
		workers = 1
	}
	return &RebuildPool{
		tasks:   make(chan func(ctx context.Context), 256),
		workers: workers,
		logger:  logger,
	}
}

func (p *RebuildPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-p.tasks:
					task(ctx)
				}
			}
		}()
	}
}

func (p *RebuildPool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.cancel()
	p.mu.Unlock()

	p.wg.Wait()
}

// Submit hands a task to the pool without blocking. A full task buffer drops
// the rebuild; the stale value keeps being served until a later read wins
// the rebuild lock again.
func (p *RebuildPool) Submit(task func(ctx context.Context)) bool {
	select {
	case p.tasks <- task:
		return true
	default:
		p.logger.Warn("cache rebuild pool saturated, dropping rebuild task")
		return false
	}
}
