package components

import (
	"venue-boxoffice/internal/handler"
	"venue-boxoffice/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPricingHandler,
		api.NewRevenueHandler,
		func(b *api.BookingHandler, p *api.PricingHandler, r *api.RevenueHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Pricing: p, Revenue: r}
		},
	),
	fx.Invoke(handler.NewRouter),
)
