package components

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseSessionModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
	booking.NewValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewHotelQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		fx.Annotate(
			usecase.NewSessionRegistry,
			fx.As(new(api.SessionOpener)),
			fx.As(new(middleware.SessionLookup)),
		),
	),
)

func NewHotelQueries(catalog shared.CatalogReadStore, cfg config.Config) queries.HotelQueries {
	return queries.NewHotelQueries(catalog, cfg.Booking.SuggestionLimit)
}
