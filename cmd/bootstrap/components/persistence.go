package components

import (
	"log/slog"

	"venue-boxoffice/internal/infra/memstore"
	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/infra/readstore"
	"venue-boxoffice/internal/infra/uow"
	"venue-boxoffice/internal/pkg/clock"
	"venue-boxoffice/internal/pkg/config"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Revenue    shared.RevenueEntryReader
}

// NewPersistence selects the committed-booking store by STORE_DRIVER.
// The pool is only opened for the postgres driver.
func NewPersistence(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Persistence, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memstore.NewStore(clk)
		logger.Info("Using in-memory booking store")
		return Persistence{UnitOfWork: store, Revenue: store}, nil

	case config.StoreDriverPostgres:
		pool, err := NewDB(lc, cfg, logger)
		if err != nil {
			return Persistence{}, err
		}
		q := pgquery.New()
		return Persistence{
			UnitOfWork: uow.NewPostgresUoW(pool, q, logger),
			Revenue:    readstore.NewRevenueEntryReadStore(q, pool),
		}, nil

	default:
		return Persistence{}, errs.Newf("unsupported store driver %q", cfg.Store.Driver)
	}
}
