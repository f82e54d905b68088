package middleware

import (
	"slices"

	"venue-boxoffice/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers need these to follow a created group and to correlate errors.
var requiredExposeHeaders = []string{requestIDHeader, "Location"}

func (l *Logger) CORS(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	l.logger.Info("CORS configured",
		"allow_origins", cfg.AllowOrigins,
		"expose_headers", expose,
	)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
