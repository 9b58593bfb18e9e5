package worker

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/services/trade"
)

// Sweeper periodically fails payment attempts past their deadline
type Sweeper struct {
	uc       trade.PaymentSweeper
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper running every interval
func NewSweeper(uc trade.PaymentSweeper, interval time.Duration) *Sweeper {
	return &Sweeper{uc: uc, interval: interval, now: time.Now}
}

// Start launches the loop. Calling it twice is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil || s.interval <= 0 {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx, s.done)

	logger.Info("Payment sweeper started", logger.Duration("interval", s.interval))
}

// Stop ends the loop and waits for an in-progress sweep, bounded by ctx
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		logger.Info("Payment sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce expires stale attempts as of now
func (s *Sweeper) RunOnce(ctx context.Context) int {
	expired, err := s.uc.ExpireStalePayments(ctx, s.now())
	if err != nil {
		logger.ErrorCtx(ctx, "Payment sweep failed",
			logger.Int("expired", expired),
			logger.Err(err))
	}
	if expired > 0 {
		metrics.ExpiredPayments.Add(float64(expired))
		logger.InfoCtx(ctx, "Expired stale payment attempts", logger.Int("expired", expired))
	}
	return expired
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}
