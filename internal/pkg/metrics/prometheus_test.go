package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEchoMiddleware_CountsRequests(t *testing.T) {
	e := echo.New()
	e.Use(EchoMiddleware("metrics-test"))
	e.GET("/api/v1/listings/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/api/v1/listings/:id", "204"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings/abc", nil))

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/api/v1/listings/:id", "204"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, before+1, after)
}

func TestRegisterEndpoint_ServesRegistry(t *testing.T) {
	e := echo.New()
	RegisterEndpoint(e)
	PaymentTransitions.WithLabelValues("complete").Inc()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tradepost_payment_transitions_total"))
}
