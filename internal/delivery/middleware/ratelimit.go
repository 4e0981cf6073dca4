package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// RateLimiter throttles per-IP using Redis. With no Redis configured the
// limiter is a pass-through, matching local development.
func RateLimiter(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		key := "rate_limit:" + c.IP()

		count, err := rdb.Incr(c.Context(), key).Result()
		if err != nil {
			// Redis trouble should not take the API down
			return c.Next()
		}

		if count == 1 {
			rdb.Expire(c.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
		}

		return c.Next()
	}
}
