package routes

import (
	"github.com/gin-gonic/gin"

	"lifeline/internal/interfaces/http/handlers"
	"lifeline/internal/interfaces/http/middleware"
)

// ViolationRouteConfig holds dependencies for violation routes.
type ViolationRouteConfig struct {
	ViolationHandler *handlers.ViolationHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupViolationRoutes configures capture reporting and strike inspection.
func SetupViolationRoutes(engine *gin.Engine, cfg *ViolationRouteConfig) {
	captures := engine.Group("/captures")
	captures.Use(cfg.AuthMiddleware.RequireAuth())
	{
		captures.POST("", cfg.ViolationHandler.ReportCapture)
	}

	violations := engine.Group("/violations")
	violations.Use(cfg.AuthMiddleware.RequireAuth())
	{
		violations.GET("/status", cfg.ViolationHandler.GetOwnStatus)

		admin := violations.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/:subscriber_id", cfg.ViolationHandler.ListViolations)
			admin.GET("/:subscriber_id/status", cfg.ViolationHandler.GetSubscriberStatus)
		}
	}
}
