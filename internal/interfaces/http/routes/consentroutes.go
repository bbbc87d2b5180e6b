package routes

import (
	"github.com/gin-gonic/gin"

	"lifeline/internal/interfaces/http/handlers"
	"lifeline/internal/interfaces/http/middleware"
)

// ConsentRouteConfig holds dependencies for consent routes.
type ConsentRouteConfig struct {
	ConsentHandler *handlers.ConsentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupConsentRoutes configures the NDA attestation routes. Everything here
// acts on the authenticated user's own agreement state.
func SetupConsentRoutes(engine *gin.Engine, cfg *ConsentRouteConfig) {
	consent := engine.Group("/consent")
	consent.Use(cfg.AuthMiddleware.RequireAuth())
	{
		consent.GET("/document", cfg.ConsentHandler.GetDocument)
		consent.GET("/status", cfg.ConsentHandler.GetStatus)
		consent.GET("/signatures", cfg.ConsentHandler.ListSignatures)
		consent.POST("/signatures", cfg.ConsentHandler.SignConsent)
		consent.POST("/revoke", cfg.ConsentHandler.RevokeConsent)
	}
}
