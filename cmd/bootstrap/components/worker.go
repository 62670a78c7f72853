package components

import (
	"context"
	"log/slog"

	"flashsale-core/internal/lock"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/config"
	"flashsale-core/internal/usecase"
	"flashsale-core/internal/usecase/shared"
	"flashsale-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOrderWorker,
	),
	fx.Invoke(
		registerWorkerLifecycle,
	),
)

func NewOrderWorker(
	queue *usecase.OrderQueue,
	locks *lock.Factory,
	txRunner shared.TxRunner,
	orders worker.OrderRepository,
	vouchers worker.VoucherRepository,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *worker.OrderWorker {
	return worker.NewOrderWorker(queue, locks, txRunner, orders, vouchers, clk, logger, cfg.Seckill.UserLockTTL)
}

func registerWorkerLifecycle(lc fx.Lifecycle, w *worker.OrderWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
