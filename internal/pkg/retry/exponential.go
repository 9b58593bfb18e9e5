package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/tradepost/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // Retries after the first call
	BaseDelay  time.Duration // Delay before the first retry
	MaxDelay   time.Duration // Upper bound on any single delay
	Multiplier float64       // Exponential backoff multiplier
	Jitter     bool          // Add up to 10% randomization
	Retryable  func(error) bool
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  func(error) bool { return true },
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	name   string
	config Config
}

// New creates a new retrier. name identifies the operation in logs.
func New(name string, config Config) *Retrier {
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	if config.Retryable == nil {
		config.Retryable = func(error) bool { return true }
	}
	return &Retrier{name: name, config: config}
}

// Execute calls fn until it succeeds, returns a non-retryable error, or the
// retry budget runs out. Cancelling ctx stops the loop between calls.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.InfoCtx(ctx, "Call succeeded after retries",
					logger.String("operation", r.name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.DebugCtx(ctx, "Call failed, retrying",
			logger.String("operation", r.name),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if r.config.MaxRetries == 0 {
		return lastErr
	}
	logger.WarnCtx(ctx, "Call failed after all retries",
		logger.String("operation", r.name),
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxRetries+1))
	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
