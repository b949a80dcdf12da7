package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"storefront-payments/internal/handler/api"
	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Payment  *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewTracingMiddleware(cfg.Telemetry))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		payments := apiGroup.Group("/payments")
		{
			callbacks := payments.Group("")
			callbacks.Use(middleware.RecoveryWith(h.Payment.RecoverCallback))
			addRoutes(callbacks, []route{
				{Method: http.MethodPost, Path: "/provider-a/callback", Handler: h.Payment.ProviderACallback},
				{Method: http.MethodOptions, Path: "/provider-a/callback", Handler: h.Payment.Preflight},
				{Method: http.MethodPost, Path: "/provider-b/ipn", Handler: h.Payment.ProviderBNotification},
				{Method: http.MethodOptions, Path: "/provider-b/ipn", Handler: h.Payment.Preflight},
			})

			returns := payments.Group("")
			returns.Use(middleware.RecoveryWith(h.Payment.RecoverReturn))
			addRoutes(returns, []route{
				{Method: http.MethodGet, Path: "/provider-a/return", Handler: h.Payment.ProviderAReturn},
				{Method: http.MethodPost, Path: "/provider-a/return", Handler: h.Payment.ProviderAReturn},
				{Method: http.MethodOptions, Path: "/provider-a/return", Handler: h.Payment.Preflight},
				{Method: http.MethodGet, Path: "/provider-b/return", Handler: h.Payment.ProviderBReturn},
				{Method: http.MethodPost, Path: "/provider-b/return", Handler: h.Payment.ProviderBReturn},
				{Method: http.MethodOptions, Path: "/provider-b/return", Handler: h.Payment.Preflight},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Initiate},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/email-token", Handler: h.Auth.RequestCode},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.Verify},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireSession())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/:publicHash", Handler: h.Order.GetByPublicHash},
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
		case http.MethodOptions:
			g.OPTIONS(r.Path, h)
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
