package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/ratelimit"
)

// RateLimit throttles a route per caller: authenticated requests are
// keyed by user id, anonymous ones by client IP. Admin users are exempt.
// A limiter backend failure fails open; throttling is protection, not a
// correctness requirement.
func RateLimit(
	limiter ratelimit.Limiter,
	logger *zap.Logger,
	route string,
	limit int,
	window time.Duration,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin, _ := c.Get(ContextIsAdmin); isAdmin == true {
			c.Next()
			return
		}

		key := callerKey(c) + ":" + route

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limit check failed", zap.String("route", route), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			httperr.TooManyRequests(c, "rate_limit_exceeded",
				"Too many requests. Please wait a moment and try again.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if userID, ok := c.Get(ContextUserID); ok {
		return fmt.Sprintf("user:%v", userID)
	}
	return "ip:" + c.ClientIP()
}
