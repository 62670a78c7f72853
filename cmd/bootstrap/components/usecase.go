package components

import (
	"log/slog"

	"flashsale-core/internal/idgen"
	"flashsale-core/internal/pkg/clock"
	"flashsale-core/internal/pkg/config"
	"flashsale-core/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewOrderQueue,
		NewSeckillUseCase,
		usecase.NewShopUseCase,
	),
)

func NewOrderQueue(cfg config.Config) *usecase.OrderQueue {
	return usecase.NewOrderQueue(cfg.Seckill.QueueCapacity, cfg.Seckill.BlockOnFull)
}

func NewSeckillUseCase(
	vouchers usecase.VoucherReader,
	reserve usecase.ReserveStore,
	gen *idgen.Generator,
	queue *usecase.OrderQueue,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.SeckillUseCase {
	return usecase.NewSeckillUseCase(vouchers, reserve, gen, queue, clk, logger)
}
