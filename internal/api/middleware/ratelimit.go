package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planet-nakshatra/consultation-api/internal/api/metrics"
)

// Limiter is the counting backend for RateLimit. Satisfied by the
// Redis fixed-window limiter.
type Limiter interface {
	Allow(ctx context.Context, scope, caller string) (bool, time.Duration, error)
}

// RateLimit rejects callers that exceed the limiter's window for scope,
// keyed by client IP. Limiter backend failures fail open: a broken Redis
// must not take the API down with it.
func RateLimit(limiter Limiter, scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				seconds := int(retryAfter.Round(time.Second).Seconds())
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":       "too many requests",
					"retry_after": seconds,
				})
			}
			return next(c)
		}
	}
}
