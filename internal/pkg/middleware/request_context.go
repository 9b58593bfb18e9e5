package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/requestcontext"
)

// RequestContextMiddleware creates a middleware that adds request context to Echo context
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			reqCtx.ServiceName = serviceName

			c.Set("request_context", reqCtx)

			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			// Echoed back so clients can quote them in bug reports
			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)
			c.Response().Header().Set("X-Trace-ID", reqCtx.TraceID)

			return next(c)
		}
	}
}

// GetRequestContext extracts request context from Echo context
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	if reqCtx, ok := c.Get("request_context").(*requestcontext.RequestContext); ok {
		return reqCtx
	}
	return nil
}
