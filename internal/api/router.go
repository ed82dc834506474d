package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/salescode/salescode-payments/docs"
)

// RouterConfig holds the router options taken from configuration.
type RouterConfig struct {
	GinMode     string
	AuthEnabled bool
	JWTSecret   string
	// RateLimiter is optional; nil disables throttling.
	RateLimiter *RateLimiter
}

// SetupRouter configures the Gin router with all routes and middleware.
func SetupRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	useJSONFieldNames()

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(CORSMiddleware())
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware())
	}

	// Probes hit the root path
	router.GET("/health", handler.Health)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.Health)

		protected := v1.Group("")
		if cfg.AuthEnabled {
			protected.Use(JWTAuthMiddleware(cfg.JWTSecret))
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", handler.CreatePayment)
			payments.GET("/gateways", handler.ListGateways)
			payments.GET("/:paymentId/status", handler.GetPaymentStatus)
		}

		subscriptions := protected.Group("/subscriptions")
		{
			subscriptions.POST("", handler.CreateSubscription)
			subscriptions.GET("/gateways", handler.ListGateways)
			subscriptions.PUT("/:subscriptionId/cancel", handler.CancelSubscription)
		}

		// Providers call these; authenticity comes from the signature.
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/stripe", handler.StripeWebhook)
			webhooks.POST("/mercadopago", handler.MercadoPagoWebhook)
			webhooks.POST("/mock", handler.MockWebhook)
		}
	}

	return router
}
