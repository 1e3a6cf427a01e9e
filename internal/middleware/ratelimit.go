package middleware

import (
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
)

// RateLimit returns a fixed-window per-IP limiter backed by Redis,
// used to keep the public request form from being spammed.  With a nil
// client the middleware is a pass-through so a missing Redis never takes
// the form down.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
    if rdb == nil || limit <= 0 {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ctx := c.Request().Context()
            key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.RealIP())

            n, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                // Redis trouble must not block legitimate traffic.
                return next(c)
            }
            if n == 1 {
                _ = rdb.Expire(ctx, key, window).Err()
            }
            if n > int64(limit) {
                return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
            }
            return next(c)
        }
    }
}
