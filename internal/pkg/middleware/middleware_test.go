package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	jwtpkg "github.com/piresc/tradepost/internal/pkg/jwt"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/pkg/requestcontext"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestValidateAPIKey(t *testing.T) {
	original := ServiceAPIKeys
	ServiceAPIKeys = map[string]string{
		"moderation-service": "mod-key",
		"payment-rail":       "rail-key",
	}
	defer func() { ServiceAPIKeys = original }()

	e := echo.New()
	e.GET("/internal/proofs", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("caller_service").(string))
	}, ValidateAPIKey("moderation-service"))

	tests := []struct {
		name       string
		key        string
		wantStatus int
		wantBody   string
	}{
		{"missing key", "", http.StatusUnauthorized, "API key is required"},
		{"key of another service", "rail-key", http.StatusUnauthorized, "Invalid API key"},
		{"wrong case", "MOD-KEY", http.StatusUnauthorized, "Invalid API key"},
		{"valid key", "mod-key", http.StatusOK, "moderation-service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal/proofs", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}

			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret", Issuer: "tradepost"}
	token, _, err := jwtpkg.GenerateToken("TrainerAlex92", "Master Ball", cfg, time.Hour)
	require.NoError(t, err)
	noHandle, _, err := jwtpkg.GenerateToken("", "", cfg, time.Hour)
	require.NoError(t, err)

	e := echo.New()
	e.Use(RequestContextMiddleware("trade-service"))
	e.POST("/listings", func(c echo.Context) error {
		handle, flair := Identity(c)
		return c.JSON(http.StatusOK, map[string]string{
			"handle":     handle,
			"flair":      flair,
			"ctx_handle": requestcontext.GetHandle(c.Request().Context()),
			"req_handle": GetRequestContext(c).Handle,
		})
	}, JWTAuthMiddleware(cfg))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "", http.StatusUnauthorized, "Authorization header is required"},
		{"basic scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"missing handle", "Bearer " + noHandle, http.StatusUnauthorized, "missing handle claim"},
		{"valid", "Bearer " + token, http.StatusOK, `"handle":"TrainerAlex92"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/listings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"flair":"Master Ball"`)
				assert.Contains(t, rec.Body.String(), `"ctx_handle":"TrainerAlex92"`)
				assert.Contains(t, rec.Body.String(), `"req_handle":"TrainerAlex92"`)
			}
		})
	}
}

func TestRequestContextMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestContextMiddleware("trade-service"))
	e.GET("/ping", func(c echo.Context) error {
		reqCtx := GetRequestContext(c)
		require.NotNil(t, reqCtx)
		assert.Equal(t, "trade-service", reqCtx.ServiceName)
		assert.Equal(t, reqCtx.RequestID, requestcontext.GetRequestID(c.Request().Context()))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{"string panic", "proof store exploded"},
		{"error panic", assert.AnError},
		{"non-error value", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			e := echo.New()
			e.Use(PanicRecoveryWithZapMiddleware(logger.NewFromCore(core)))
			e.GET("/boom", func(c echo.Context) error {
				c.Set(ContextHandle, "TrainerAlex92")
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			req.Header.Set("Authorization", "Bearer secret")
			req.Header.Set(echo.HeaderXRequestID, "req-9")

			rec := serve(e, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "unexpected error")

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, "TrainerAlex92", fields["handle"])
			assert.Equal(t, "req-9", fields["request_id"])
			assert.Contains(t, fields, "stack_trace")
			headers, ok := fields["headers"].(map[string]string)
			require.True(t, ok)
			assert.NotContains(t, headers, "Authorization")
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestWriteRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := echo.New()
	e.POST("/listings", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextHandle, c.Request().Header.Get("X-Test-Handle"))
			return next(c)
		}
	}, WriteRateLimiter(2, time.Minute, client))

	post := func(handle string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/listings", nil)
		req.Header.Set("X-Test-Handle", handle)
		return serve(e, req)
	}

	assert.Equal(t, http.StatusCreated, post("alice").Code)
	second := post("alice")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := post("alice")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "60", third.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, post("bob").Code, "limits are per handle")

	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusCreated, post("alice").Code, "a new window starts after the period")
}

func TestWriteRateLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	e := echo.New()
	e.POST("/listings", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, WriteRateLimiter(1, time.Minute, client))

	req := httptest.NewRequest(http.MethodPost, "/listings", nil).WithContext(context.Background())
	rec := serve(e, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
