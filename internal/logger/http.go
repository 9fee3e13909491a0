package logger

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// AccessMiddleware logs method, path, status, size, latency and remote address of every request.
// Request bodies are never read
func AccessMiddleware(l *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err) // Let the error handler settle the status before it is logged
			}

			response := c.Response()
			l.Debug("http_access",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", response.Status,
				"bytes", response.Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
			)
			return nil
		}
	}
}
