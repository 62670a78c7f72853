package bootstrap

import (
	"flashsale-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	components.InfrastructureModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.WorkerModule,
)
