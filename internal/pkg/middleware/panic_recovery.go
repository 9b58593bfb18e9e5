package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/utils"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	DisableStack bool
	Logger       *logger.ZapLogger
}

// PanicRecoveryMiddleware turns a panic in a handler into a logged 500
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return PanicRecoveryMiddleware(PanicRecoveryConfig{Logger: zapLogger})
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	req := c.Request()

	handle := "anonymous"
	if h, ok := c.Get(ContextHandle).(string); ok && h != "" {
		handle = h
	}
	requestID := getRequestID(c)

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("handle", handle),
		logger.String("request_id", requestID),
		logger.Any("headers", extractSafeHeaders(req.Header)),
	}
	if !config.DisableStack {
		fields = append(fields, logger.String("stack_trace", string(debug.Stack())))
	}
	config.Logger.Error("Panic recovered during request processing", fields...)

	if !c.Response().Committed {
		if err := utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request"); err != nil {
			_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func extractSafeHeaders(headers http.Header) map[string]string {
	safe := make(map[string]string)
	sensitiveHeaders := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"set-cookie":    true,
		"x-api-key":     true,
	}

	for name, values := range headers {
		if !sensitiveHeaders[strings.ToLower(name)] && len(values) > 0 {
			safe[name] = values[0]
		}
	}
	return safe
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
