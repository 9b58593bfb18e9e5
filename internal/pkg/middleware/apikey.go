package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/config"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys stores the mapping of service names to their API keys
var ServiceAPIKeys = map[string]string{
	constants.ServiceModeration:  config.GetEnv("MODERATION_SERVICE_API_KEY", ""),
	constants.ServicePaymentRail: config.GetEnv("PAYMENT_RAIL_API_KEY", ""),
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			caller := ""
			for _, service := range allowedServices {
				expected := ServiceAPIKeys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					caller = service
					break
				}
			}
			if caller == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			c.Set("caller_service", caller)
			return next(c)
		}
	}
}
