package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/piresc/tradepost/internal/pkg/jwt"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/pkg/requestcontext"
	"github.com/piresc/tradepost/internal/utils"
)

// Echo context keys set by JWTAuthMiddleware
const (
	ContextHandle = "handle"
	ContextFlair  = "flair"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.Handle == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing handle claim")
			}

			c.Set(ContextHandle, claims.Handle)
			c.Set(ContextFlair, claims.Flair)
			if reqCtx := GetRequestContext(c); reqCtx != nil {
				reqCtx.Handle = claims.Handle
			}
			ctx := context.WithValue(c.Request().Context(), requestcontext.HandleKey, claims.Handle)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// Identity returns the handle and flair JWTAuthMiddleware stored on c
func Identity(c echo.Context) (handle, flair string) {
	handle, _ = c.Get(ContextHandle).(string)
	flair, _ = c.Get(ContextFlair).(string)
	return handle, flair
}
