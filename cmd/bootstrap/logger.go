package bootstrap

import (
	"log/slog"

	"venue-boxoffice/internal/handler/middleware"
	"venue-boxoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
