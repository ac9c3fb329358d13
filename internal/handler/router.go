package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Profile  *api.ProfileHandler
	Hotels   *api.HotelHandler
	Payments *api.PaymentHandler
	Bookings *api.BookingHandler
	Stream   *api.StreamHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	profile *api.ProfileHandler,
	hotels *api.HotelHandler,
	payments *api.PaymentHandler,
	bookings *api.BookingHandler,
	stream *api.StreamHandler,
) Handlers {
	return Handlers{
		Auth:     auth,
		Profile:  profile,
		Hotels:   hotels,
		Payments: payments,
		Bookings: bookings,
		Stream:   stream,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSession := sessionMiddleware.RequireSession()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{sessionMiddleware.OptionalSession()}},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{sessionMiddleware.OptionalSession()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireSession)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPatch, Path: "/profile", Handler: h.Profile.Update, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodGet, Path: "/payment-methods", Handler: h.Payments.List},
			{Method: http.MethodGet, Path: "/ws", Handler: h.Stream.Bookings, Mw: []gin.HandlerFunc{requireSession}},
		})

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Hotels.List},
				{Method: http.MethodGet, Path: "/suggestions", Handler: h.Hotels.Suggestions},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hotels.Get},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireSession)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
				{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
