package components

import (
	"context"
	"log/slog"
	"time"

	"venue-boxoffice/internal/infra/db"
	"venue-boxoffice/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const migrateTimeout = 30 * time.Second

// NewDB opens the pool, applies the schema when enabled and closes the pool on stop.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		defer cancel()
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("Database schema applied")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
