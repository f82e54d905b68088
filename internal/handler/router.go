package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-boxoffice/internal/handler/api"
	"venue-boxoffice/internal/handler/middleware"
	"venue-boxoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Pricing *api.PricingHandler
	Revenue *api.RevenueHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	engine.Use(logger.Recovery())
	engine.Use(logger.CORS(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(logger.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Pricing.Quote},
			{Method: http.MethodGet, Path: "/revenue/report", Handler: h.Revenue.Report},
		})

		groups := apiGroup.Group("/booking-groups")
		{
			withID := []gin.HandlerFunc{middleware.RequireGroupID()}
			addRoutes(groups, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateGroup},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetGroup, Mw: withID},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Discard, Mw: withID},
				{Method: http.MethodPost, Path: "/:id/requests", Handler: h.Booking.AddRequest, Mw: withID},
				{Method: http.MethodDelete, Path: "/:id/requests/:index", Handler: h.Booking.RemoveRequest, Mw: withID},
				{Method: http.MethodPost, Path: "/:id/multi-day", Handler: h.Booking.AddMultiDay, Mw: withID},
				{Method: http.MethodGet, Path: "/:id/conflicts", Handler: h.Booking.Conflicts, Mw: withID},
				{Method: http.MethodPost, Path: "/:id/commit", Handler: h.Booking.Commit, Mw: withID},
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
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
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
