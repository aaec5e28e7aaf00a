package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const tooManyRequests = "too many requests, slow down"

// rateLimitKey prefers the authenticated user and falls back to the client IP.
func rateLimitKey(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}

func setRateLimitHeaders(c *gin.Context, limit int, remaining int64, reset time.Time) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, remaining), 10))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
}

func rejectRateLimited(c *gin.Context, retryIn time.Duration) {
	c.Header("Retry-After", strconv.Itoa(max(1, int(retryIn.Seconds()))))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": tooManyRequests})
}

// RateLimiterMiddleware shares a fixed window counter between instances
// through Redis. Requests pass when Redis is unavailable.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s", rateLimitKey(c))

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logrus.WithError(err).Warn("[RATELIMIT] redis error, limiter skipped")
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logrus.WithError(err).Warn("[RATELIMIT] redis expire error, dropping key")
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		setRateLimitHeaders(c, limit, int64(limit)-count, time.Now().Add(ttl))

		if count > int64(limit) {
			logrus.WithField("key", key).Info("[RATELIMIT] request rejected")
			rejectRateLimited(c, ttl)
			return
		}

		c.Next()
	}
}
