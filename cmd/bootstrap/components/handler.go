package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"

	"github.com/olahol/melody"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		melody.New,
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewHotelHandler,
		api.NewPaymentHandler,
		api.NewBookingHandler,
		api.NewStreamHandler,
		middleware.NewSessionMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
