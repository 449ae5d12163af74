package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"intake/internal/infrastructure/ratelimit"
	"intake/internal/shared/constants"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
	"intake/internal/shared/utils"
)

// RateLimiter limits requests per client IP. When the backing store fails
// the request is let through.
type RateLimiter struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		decision, err := rl.limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "client_ip", clientIP, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
			rl.logger.Warnw("rate limit exceeded", "client_ip", clientIP, "path", c.Request.URL.Path)
			utils.AbortWithError(c, errors.NewRateLimitedError("Too many requests, please try again later"))
			return
		}

		c.Next()
	}
}
