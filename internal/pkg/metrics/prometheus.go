package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	// ListingsCreated counts listings accepted by the store
	ListingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradepost_listings_created_total",
			Help: "Total number of listings created",
		},
		[]string{"category"},
	)

	// ProofTransitions counts proof submissions and verifications
	ProofTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradepost_proof_transitions_total",
			Help: "Proof state transitions by target status",
		},
		[]string{"status"},
	)

	// PaymentTransitions counts payment attempt state changes
	PaymentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradepost_payment_transitions_total",
			Help: "Payment attempt transitions by target state",
		},
		[]string{"state"},
	)

	// RejectedTransitions counts transitions refused by an invariant
	RejectedTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradepost_rejected_transitions_total",
			Help: "Transitions rejected because of an invariant",
		},
		[]string{"entity", "operation"},
	)

	// RailDispatches counts hand-offs to the payment rail
	RailDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradepost_rail_dispatches_total",
			Help: "Payment rail dispatches by transport and result",
		},
		[]string{"transport", "result"},
	)

	// PaymentAmount tracks normalized payment amounts
	PaymentAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tradepost_payment_amount",
			Help:    "Normalized payment amounts at initiation",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// ExpiredPayments counts attempts failed by the timeout sweeper
	ExpiredPayments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tradepost_expired_payments_total",
			Help: "Payment attempts failed for exceeding their deadline",
		},
	)

	// SandboxResults counts answers published by the sandbox rail
	SandboxResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradepost_sandbox_results_total",
			Help: "Sandbox rail results by outcome",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)

	// CircuitBreakerFailures tracks calls that failed through a breaker
	CircuitBreakerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of circuit breaker failures",
		},
		[]string{"circuit_name"},
	)
)

// EchoMiddleware records request count and latency per route
func EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}

			RequestsTotal.WithLabelValues(
				serviceName,
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()

			RequestDuration.WithLabelValues(
				serviceName,
				c.Request().Method,
				c.Path(),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RegisterEndpoint exposes the default registry on /metrics
func RegisterEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
