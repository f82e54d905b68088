package components

import (
	"context"
	"log/slog"

	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/infra/memstore"
	"venue-boxoffice/internal/pkg/clock"
	"venue-boxoffice/internal/pkg/config"
	"venue-boxoffice/internal/usecase/commands"
	"venue-boxoffice/internal/usecase/queries"
	"venue-boxoffice/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	revenue.NewManager,
	fx.Annotate(
		func() revenue.NoTicketSales { return revenue.NoTicketSales{} },
		fx.As(new(revenue.TicketSalesSource)),
	),
	NewGroupStore,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewRevenueQueries,
	),
)

// NewGroupStore runs idle-group eviction for the lifetime of the app.
func NewGroupStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.GroupStore {
	store := memstore.NewGroupStore(cfg.Booking.GroupTTL, clk, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Booking.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return store
}
