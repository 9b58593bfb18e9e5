package railsandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/utils"
)

// Publisher sends a result back to the marketplace
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

// Rail answers every dispatch exactly once after a fixed delay
type Rail struct {
	cfg       models.SandboxConfig
	publisher Publisher
	now       func() time.Time

	mu       sync.Mutex
	closed   bool
	pending  map[string]*time.Timer
	answered map[string]struct{}
	wg       sync.WaitGroup
}

// NewRail creates a sandbox rail publishing through publisher
func NewRail(cfg models.SandboxConfig, publisher Publisher) *Rail {
	return &Rail{
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
		pending:   make(map[string]*time.Timer),
		answered:  make(map[string]struct{}),
	}
}

// Decide picks the outcome for a dispatch
func (r *Rail) Decide(d models.RailDispatch) models.RailResult {
	result := models.RailResult{AttemptID: d.AttemptID, Outcome: models.RailOutcomeSuccess}

	if domain := strings.ToLower(r.cfg.FailDomain); domain != "" && utils.EmailDomain(d.PayerContact) == domain {
		result.Outcome = models.RailOutcomeFailure
		result.Reason = "payer account declined"
		return result
	}
	if r.cfg.MaxAmount > 0 && d.Amount.GreaterThan(decimal.NewFromFloat(r.cfg.MaxAmount)) {
		result.Outcome = models.RailOutcomeFailure
		result.Reason = fmt.Sprintf("amount %s exceeds sandbox limit", d.Amount.String())
	}
	return result
}

// Accept schedules the answer for a dispatch. An attempt id that is pending or
// already answered is ignored.
func (r *Rail) Accept(ctx context.Context, d models.RailDispatch) error {
	if d.AttemptID == "" {
		return fmt.Errorf("%w: attempt_id is required", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return fmt.Errorf("%w: sandbox rail is shutting down", apperrors.ErrRailFailure)
	}
	_, waiting := r.pending[d.AttemptID]
	_, done := r.answered[d.AttemptID]
	if waiting || done {
		logger.WarnCtx(ctx, "Duplicate dispatch ignored",
			logger.String("attempt_id", d.AttemptID),
			logger.Bool("answered", done))
		return nil
	}

	r.wg.Add(1)
	r.pending[d.AttemptID] = time.AfterFunc(r.cfg.Delay, func() {
		defer r.wg.Done()
		r.answer(d)
	})

	logger.InfoCtx(ctx, "Dispatch accepted",
		logger.String("attempt_id", d.AttemptID),
		logger.String("payer", utils.MaskEmail(d.PayerContact)),
		logger.String("amount", d.Amount.String()),
		logger.Duration("delay", r.cfg.Delay))
	return nil
}

// HandleDispatch decodes a NATS dispatch message
func (r *Rail) HandleDispatch(data []byte) error {
	var d models.RailDispatch
	if err := json.Unmarshal(data, &d); err != nil {
		logger.Warn("Dropping malformed dispatch", logger.Err(err))
		return nil
	}
	return r.Accept(context.Background(), d)
}

// Pending reports how many dispatches still await an answer
func (r *Rail) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Close stops accepting dispatches and waits for scheduled answers, bounded by ctx
func (r *Rail) Close(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Rail) answer(d models.RailDispatch) {
	result := r.Decide(d)
	result.SettledAt = r.now().UTC()

	r.mu.Lock()
	delete(r.pending, d.AttemptID)
	r.answered[d.AttemptID] = struct{}{}
	r.mu.Unlock()

	if err := r.publisher.PublishJSON(constants.SubjectRailResult, result); err != nil {
		logger.Error("Failed to publish rail result",
			logger.String("attempt_id", d.AttemptID),
			logger.Err(err))
		return
	}
	metrics.SandboxResults.WithLabelValues(string(result.Outcome)).Inc()

	logger.Info("Rail result published",
		logger.String("attempt_id", d.AttemptID),
		logger.String("outcome", string(result.Outcome)),
		logger.String("reason", result.Reason))
}
