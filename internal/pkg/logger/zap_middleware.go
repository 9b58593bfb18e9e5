package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)
			if err != nil {
				// Let echo write the response so the status below is final
				c.Error(err)
			}

			if raw != "" {
				path = path + "?" + raw
			}

			handle := "anonymous"
			if h, ok := c.Get("handle").(string); ok && h != "" {
				handle = h
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			logger.LogHTTPRequest(c.Request().Method, path, c.RealIP(), handle, requestID,
				c.Response().Status, time.Since(start), err)

			return nil
		}
	}
}
