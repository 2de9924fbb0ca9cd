package routes

import (
	"github.com/gin-gonic/gin"

	"netbill/internal/interfaces/http/handlers"
	"netbill/internal/interfaces/http/middleware"
)

// PackageRouteConfig contains dependencies for package catalog routes.
type PackageRouteConfig struct {
	PackageHandler *handlers.PackageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPackageRoutes configures the package catalog routes.
// Routes: /api/packages/*
func SetupPackageRoutes(engine *gin.Engine, cfg *PackageRouteConfig) {
	packages := engine.Group("/api/packages")
	packages.Use(cfg.AuthMiddleware.RequireAuth())
	{
		packages.GET("", cfg.PackageHandler.ListPackages)
		packages.POST("", cfg.PackageHandler.CreatePackage)
		packages.GET("/:id", cfg.PackageHandler.GetPackage)
		packages.PUT("/:id", cfg.PackageHandler.UpdatePackage)
		packages.DELETE("/:id", cfg.PackageHandler.DeletePackage)
	}
}
