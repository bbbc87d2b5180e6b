package routes

import (
	"github.com/gin-gonic/gin"

	"lifeline/internal/interfaces/http/handlers"
	"lifeline/internal/interfaces/http/middleware"
)

// ProtectionRouteConfig holds dependencies for protection routes.
type ProtectionRouteConfig struct {
	ProtectionHandler *handlers.ProtectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupProtectionRoutes configures the protected content gateway.
func SetupProtectionRoutes(engine *gin.Engine, cfg *ProtectionRouteConfig) {
	content := engine.Group("/content")
	content.Use(cfg.AuthMiddleware.RequireAuth())
	{
		content.POST("/:content_id/access", cfg.ProtectionHandler.RequestAccess)

		admin := content.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/:content_id/access-log", cfg.ProtectionHandler.ListAccessLog)
		}
	}
}
