package middleware

import (
	"fmt"
	"time"

	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware creates a fixed-window per-IP rate limiter backed
// by Redis, used on the credential endpoints to slow brute forcing.
// When Redis is unreachable the request is allowed through; losing the
// limiter must not take the login path down with it.
func RateLimitMiddleware(rdb *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			LogError("rate limiter unavailable: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}

		if count > int64(maxRequests) {
			response.TooManyRequests(c, "Too many attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
