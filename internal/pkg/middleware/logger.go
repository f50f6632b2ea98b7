package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every request with latency and status.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status

			userID := "anonymous"
			if id := c.Get("user_id"); id != nil {
				userID = fmt.Sprintf("%v", id)
			}

			fields := []logger.Field{
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.Int("status", status),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("user_id", userID),
			}

			switch {
			case status >= 500:
				logger.Error("Server error", append(fields, logger.Err(err))...)
			case status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
