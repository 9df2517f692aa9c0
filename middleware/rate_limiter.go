package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/config"
	"github.com/khmiq/ecommerce/models"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window limiter on the auth form posts (login and
// OTP sends are the abuse targets). Without a Redis client it is a
// passthrough.
func RateLimiter(rdb *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		count, err := rdb.Incr(config.Ctx, key).Result()
		if err != nil {
			// Redis trouble should not take down the login page.
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			rdb.Expire(config.Ctx, key, window)
			resetAt := time.Now().Add(window)
			rdb.Set(config.Ctx, resetKey, resetAt.Unix(), window)
		}

		resetAtUnix, _ := rdb.Get(config.Ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests, slow down"))
			c.Abort()
			return
		}
		c.Next()
	}
}
