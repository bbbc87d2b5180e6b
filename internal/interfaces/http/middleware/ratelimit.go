package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifeline/internal/infrastructure/ratelimit"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/utils"
)

// PublicRateLimit throttles the unauthenticated trust endpoints per client IP.
// A limiter backend outage fails open; blocking all public verification over
// a Redis blip would be worse than briefly losing the throttle.
func PublicRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("public:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
