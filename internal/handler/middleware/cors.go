package middleware

import (
	"log/slog"
	"strings"

	"storefront-payments/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// PaymentsPathPrefix is where provider callbacks and returns live.
const PaymentsPathPrefix = "/api/payments/"

// NewCORSMiddleware applies the storefront CORS policy to every route except the payment routes.
// Provider traffic comes from origins that are not listed, and those routes answer preflight themselves.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "bypass_prefix", PaymentsPathPrefix)

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, PaymentsPathPrefix) {
			c.Next()
			return
		}
		handler(c)
	}
}
