package middleware

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	contactKeyPrefix = "contact:ratelimit:" // one sorted set per client IP
	contactWindow    = time.Hour
	contactLimit     = 10
)

// ContactRateLimit caps public contact submissions at 10 per client IP over
// a rolling hour, counted in a Redis sorted set. The limiter fails open:
// an unreachable Redis must not take the contact form down with it.
//
// Two concurrent checks for the same client can both pass before either
// records its hit; the window is best-effort, not strict.
func ContactRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bypassAllowed(c) {
			c.Next()
			return
		}
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := contactKeyPrefix + c.ClientIP()
		now := time.Now()
		windowStart := strconv.FormatInt(now.Add(-contactWindow).UnixNano(), 10)

		if err := rdb.ZRemRangeByScore(ctx, key, "0", windowStart).Err(); err != nil {
			utils.LogError(err, "Rate limiter could not trim the submission window")
			c.Next()
			return
		}

		count, err := rdb.ZCard(ctx, key).Result()
		if err != nil {
			utils.LogError(err, "Rate limiter could not count submissions")
			c.Next()
			return
		}

		if count >= contactLimit {
			utils.SendError(c, http.StatusTooManyRequests, "Too many contact submissions. Please try again later.")
			c.Abort()
			return
		}

		pipe := rdb.Pipeline()
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: uuid.New().String()})
		pipe.Expire(ctx, key, contactWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			utils.LogError(err, "Rate limiter could not record the submission")
		}

		c.Next()
	}
}

// bypassAllowed honors the operator bypass only when a non-empty shared
// secret is configured and presented verbatim. There is no query-parameter
// or bare environment-flag bypass.
func bypassAllowed(c *gin.Context) bool {
	token := os.Getenv("RATE_LIMIT_BYPASS_TOKEN")
	return token != "" && c.GetHeader("X-RateLimit-Bypass") == token
}
