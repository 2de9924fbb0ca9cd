// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"netbill/internal/interfaces/http/handlers"
	"netbill/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig contains dependencies for subscription lifecycle routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler   *handlers.SubscriptionHandler
	AuthMiddleware        *middleware.AuthMiddleware
	IdempotencyMiddleware *middleware.IdempotencyMiddleware
}

// SetupSubscriptionRoutes configures the subscription lifecycle routes.
// Routes: /api/subscribe/client/* and /api/renewals/stats
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	client := engine.Group("/api/subscribe/client")
	client.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Reads
		client.GET("/current", cfg.SubscriptionHandler.ListCurrent)
		client.GET("/history", cfg.SubscriptionHandler.RenewalHistory)

		// Lifecycle writes. Deliberately non-idempotent; the guard only
		// engages when the client sends an Idempotency-Key header.
		writes := client.Group("")
		if cfg.IdempotencyMiddleware != nil {
			writes.Use(cfg.IdempotencyMiddleware.Guard())
		}
		{
			writes.POST("/renew", cfg.SubscriptionHandler.Renew)
			writes.POST("/upgrade/:id", cfg.SubscriptionHandler.Upgrade)
			writes.POST("/reverse/:id", cfg.SubscriptionHandler.ReverseRenewal)
			writes.POST("/:id", cfg.SubscriptionHandler.Subscribe)
		}

		// Administrative edits
		client.PUT("/:id", cfg.SubscriptionHandler.UpdateSubscription)
		client.DELETE("/delete/:id", cfg.SubscriptionHandler.DeleteRenewal)
		client.DELETE("/payment/:id", cfg.SubscriptionHandler.DeletePayment)
		client.DELETE("/:id", cfg.SubscriptionHandler.DeleteSubscription)
	}

	stats := engine.Group("/api/renewals")
	stats.Use(cfg.AuthMiddleware.RequireAuth())
	{
		stats.GET("/stats", cfg.SubscriptionHandler.RenewalStats)
	}
}
