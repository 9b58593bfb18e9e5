package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/sony/gobreaker"
)

// Errors
var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker configuration
type Config struct {
	Name         string
	MaxRequests  uint32        // Max requests allowed in half-open state
	Interval     time.Duration // Window to clear counters in closed state
	Timeout      time.Duration // Time to wait in open state before half-open
	MinRequests  uint32        // Requests needed in a window before tripping
	FailureRatio float64       // Failure ratio that trips the breaker
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:         name,
		MaxRequests:  3,
		Interval:     15 * time.Second,
		Timeout:      30 * time.Second,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

// FromModel builds a Config from the application settings
func FromModel(name string, cfg models.BreakerConfig) Config {
	c := DefaultConfig(name)
	if cfg.MaxRequests > 0 {
		c.MaxRequests = cfg.MaxRequests
	}
	if cfg.Interval > 0 {
		c.Interval = cfg.Interval
	}
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	if cfg.MinRequests > 0 {
		c.MinRequests = cfg.MinRequests
	}
	if cfg.FailureRatio > 0 {
		c.FailureRatio = cfg.FailureRatio
	}
	return c
}

// CircuitBreaker wraps gobreaker with logging and Prometheus state
type CircuitBreaker struct {
	cb   *gobreaker.CircuitBreaker
	name string
}

// New creates a new circuit breaker
func New(config Config) *CircuitBreaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Info("Circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
		},
	})

	metrics.CircuitBreakerState.WithLabelValues(config.Name).Set(0)

	return &CircuitBreaker{cb: cb, name: config.Name}
}

// Execute runs fn unless the breaker is open. Open and half-open rejections
// are returned as ErrCircuitBreakerOpen and ErrTooManyRequests.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn(ctx)
	})
	if err == nil {
		return nil
	}

	metrics.CircuitBreakerFailures.WithLabelValues(b.name).Inc()

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return ErrCircuitBreakerOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrTooManyRequests
	}
	return err
}

// State returns the current state name
func (b *CircuitBreaker) State() string {
	return b.cb.State().String()
}

// Name returns the circuit breaker name
func (b *CircuitBreaker) Name() string {
	return b.name
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	}
	return 0
}
