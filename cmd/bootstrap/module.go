package bootstrap

import (
	"studio-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	AdminModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
