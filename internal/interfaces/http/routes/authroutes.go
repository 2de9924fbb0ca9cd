package routes

import (
	"github.com/gin-gonic/gin"

	"netbill/internal/interfaces/http/handlers"
)

// AuthRouteConfig contains dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures session issuance routes.
// Routes: /api/auth/*
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
