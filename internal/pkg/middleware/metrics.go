package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			method := c.Request().Method

			metrics.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			metrics.ResponseTime.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
