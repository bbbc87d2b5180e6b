package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifeline/internal/shared/constants"
	"lifeline/internal/shared/utils"
)

// RequireAdmin gates the operator surface. It assumes RequireAuth has already
// populated the role from verified token claims.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		if role != constants.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
