package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/gnwankwo/casting-agency/internal/config"
)

// RateLimit returns a Redis token-bucket limiter keyed by client IP, the
// authenticated subject (when present) and the route.  The bucket state
// lives in Redis so the limit holds across replicas.  Exhausted buckets
// produce 429 with a Retry-After header.  Without Redis the middleware is
// a pass-through; Redis errors fail open.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limiterScript := redis.NewScript(`
        local key = KEYS[1]
        local now_ms = tonumber(ARGV[1])
        local capacity = tonumber(ARGV[2])
        local refill_tokens = tonumber(ARGV[3])
        local interval_ms = tonumber(ARGV[4])
        local ttl_seconds = tonumber(ARGV[5])

        local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
        local tokens = tonumber(state[1])
        local last_refill = tonumber(state[2])

        if tokens == nil or last_refill == nil then
            tokens = capacity
            last_refill = now_ms
        end

        if interval_ms > 0 and refill_tokens > 0 then
            local elapsed = math.max(0, now_ms - last_refill)
            local intervals = math.floor(elapsed / interval_ms)
            if intervals > 0 then
                tokens = math.min(capacity, tokens + (intervals * refill_tokens))
                last_refill = last_refill + (intervals * interval_ms)
            end
        end

        local allowed = 0
        local retry_after_ms = 0
        if tokens > 0 then
            allowed = 1
            tokens = tokens - 1
        else
            local until_next = interval_ms - (now_ms - last_refill)
            if until_next < 0 then until_next = 0 end
            retry_after_ms = until_next
        end

        redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
        redis.call('EXPIRE', key, ttl_seconds)

        return { allowed, tokens, retry_after_ms }
    `)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rateKey(cfg.Prefix, c)
			now := time.Now()

			args := []interface{}{
				now.UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL / time.Second),
			}

			ctx := c.Request().Context()
			vals, err := limiterScript.Run(ctx, rdb, []string{key}, args...).Slice()
			if err != nil || len(vals) != 3 {
				// Redis trouble must not take the API down.
				return next(c)
			}
			allowed, _ := vals[0].(int64)
			retryMs, _ := vals[2].(int64)
			if allowed != 1 {
				retry := time.Duration(retryMs) * time.Millisecond
				if retry <= 0 {
					retry = cfg.RefillInterval
				}
				c.Response().Header().Set("Retry-After",
					strconv.Itoa(int((retry+time.Second-1)/time.Second)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"success": false,
					"message": "Too Many Requests",
				})
			}
			return next(c)
		}
	}
}

// rateKey builds the bucket key.  The subject claim stashed by JWTAuth is
// included when present so authenticated users do not share a bucket with
// their whole NAT.
func rateKey(prefix string, c echo.Context) string {
	subject := "guest"
	if v := c.Get("user_id"); v != nil {
		subject = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%s:%s:%s:%s", prefix, c.RealIP(), subject, c.Path())
}
