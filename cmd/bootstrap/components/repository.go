package components

import (
	"flashsale-core/internal/infra/db"
	"flashsale-core/internal/infra/redisstore"
	"flashsale-core/internal/infra/repository"
	"flashsale-core/internal/usecase"
	"flashsale-core/internal/usecase/shared"
	"flashsale-core/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(shared.TxRunner)),
		),
		repository.NewVoucherRepository,
		repository.NewOrderRepository,
		fx.Annotate(
			repository.NewShopRepository,
			fx.As(new(usecase.ShopRepository)),
		),
		fx.Annotate(
			repository.NewCachedVoucherReader,
			fx.As(new(usecase.VoucherReader)),
		),
		fx.Annotate(
			redisstore.NewReserveStore,
			fx.As(new(usecase.ReserveStore)),
		),
		redisstore.NewSessionStore,
		redisstore.NewLikeStore,
		NewWorkerOrderRepository,
		NewWorkerVoucherRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewWorkerOrderRepository(r *repository.OrderRepository) worker.OrderRepository {
	return r
}

func NewWorkerVoucherRepository(r *repository.VoucherRepository) worker.VoucherRepository {
	return r
}
