package routes

import (
	"github.com/gin-gonic/gin"

	"lifeline/internal/interfaces/http/handlers"
	"lifeline/internal/interfaces/http/middleware"
)

// WatermarkRouteConfig holds dependencies for watermark routes.
type WatermarkRouteConfig struct {
	WatermarkHandler *handlers.WatermarkHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupWatermarkRoutes configures watermark routes. Issuance, tracing, and
// embedding expose viewer identity and raw tokens, so the whole group is
// admin-only; regular viewers get watermarks through the access gate.
func SetupWatermarkRoutes(engine *gin.Engine, cfg *WatermarkRouteConfig) {
	watermarks := engine.Group("/watermarks")
	watermarks.Use(cfg.AuthMiddleware.RequireAuth())
	watermarks.Use(middleware.RequireAdmin())
	{
		watermarks.POST("", cfg.WatermarkHandler.IssueWatermark)
		watermarks.GET("/trace/:token", cfg.WatermarkHandler.TraceToken)
		watermarks.POST("/embed", cfg.WatermarkHandler.EmbedMedia)
	}

	contents := engine.Group("/contents")
	contents.Use(cfg.AuthMiddleware.RequireAuth())
	contents.Use(middleware.RequireAdmin())
	{
		contents.GET("/:content_id/watermarks", cfg.WatermarkHandler.ListIssuances)
	}
}
