package bootstrap

import (
	"venue-boxoffice/cmd/bootstrap/components"
	"venue-boxoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the full application graph minus the HTTP server itself.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
