package middleware

import (
	"storefront-payments/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewTracingMiddleware starts a server span per request using the global tracer provider.
func NewTracingMiddleware(cfg config.TelemetryConfig) gin.HandlerFunc {
	return otelgin.Middleware(cfg.ServiceName)
}
