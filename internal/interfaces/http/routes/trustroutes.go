package routes

import (
	"github.com/gin-gonic/gin"

	"lifeline/internal/interfaces/http/handlers"
	"lifeline/internal/interfaces/http/middleware"
)

// TrustRouteConfig holds dependencies for trust routes.
type TrustRouteConfig struct {
	TrustHandler    *handlers.TrustHandler
	AuthMiddleware  *middleware.AuthMiddleware
	PublicRateLimit gin.HandlerFunc
}

// SetupTrustRoutes configures fingerprint and verification routes. The
// verification surface is deliberately public: anyone holding a hash can
// check provenance without an account, behind a per-IP rate limit.
func SetupTrustRoutes(engine *gin.Engine, cfg *TrustRouteConfig) {
	trust := engine.Group("/trust")
	{
		public := trust.Group("")
		if cfg.PublicRateLimit != nil {
			public.Use(cfg.PublicRateLimit)
		}
		{
			public.GET("/verify/:hash", cfg.TrustHandler.VerifyHash)
			public.GET("/badge/:content_id", cfg.TrustHandler.GetBadge)
		}

		creator := trust.Group("")
		creator.Use(cfg.AuthMiddleware.RequireAuth())
		{
			creator.POST("/fingerprints", cfg.TrustHandler.AnchorContent)
		}

		admin := trust.Group("")
		admin.Use(cfg.AuthMiddleware.RequireAuth())
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/reanchor", cfg.TrustHandler.ReanchorPending)
		}
	}
}
