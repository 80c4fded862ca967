package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AIRateLimit caps AI requests per user with a fixed hourly window counted in
// Redis, so the limit holds across instances. Must run after Auth. If Redis
// is down the request is allowed through; the upstream quota is the backstop.
func AIRateLimit(rdb *redis.Client, maxPerHour int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("limit:ai:%d:%s", userID, time.Now().UTC().Format("2006010215"))

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("AI rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, time.Hour)
		}

		if count > int64(maxPerHour) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message":   "Too many AI requests",
				"limit":     maxPerHour,
				"remaining": 0,
			})
			return
		}

		c.Next()
	}
}
