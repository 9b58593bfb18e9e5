package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/utils"
	"github.com/piresc/tradepost/services/trade"
)

// paymentGate is the slice of the trade service the payment engine may touch
type paymentGate interface {
	payableListing(ctx context.Context, listingID string) (*models.Listing, error)
	claimInFlight(ctx context.Context, listingID, attemptID string) error
	releaseInFlight(ctx context.Context, listingID, attemptID string) error
	annotatePaid(ctx context.Context, listingID string) error
}

// PaymentEngine runs the confirm -> processing -> complete|failed lifecycle
type PaymentEngine struct {
	repo      trade.PaymentRepo
	rail      trade.RailGW
	gate      paymentGate
	now       Clock
	transport string
}

// NewPaymentEngine creates a payment engine dispatching through rail
func NewPaymentEngine(repo trade.PaymentRepo, rail trade.RailGW, gate paymentGate, now Clock, transport string) *PaymentEngine {
	return &PaymentEngine{repo: repo, rail: rail, gate: gate, now: now, transport: transport}
}

// Initiate opens a payment attempt in confirm for a priced listing with no
// attempt in flight.
func (e *PaymentEngine) Initiate(ctx context.Context, listingID, payerContact string) (*models.PaymentAttempt, error) {
	listing, err := e.gate.payableListing(ctx, listingID)
	if err != nil {
		e.rejected(ctx, "initiate", listingID, "", err)
		return nil, err
	}

	contact := strings.TrimSpace(payerContact)
	if !utils.IsValidEmail(contact) {
		return nil, apperrors.Validation("payer contact %q is not a valid address", contact)
	}
	amount, err := models.NormalizeAmount(listing.Price)
	if err != nil {
		return nil, err
	}

	attempt := &models.PaymentAttempt{
		ID:           uuid.New().String(),
		ListingID:    listingID,
		PayerContact: contact,
		AmountRaw:    listing.Price,
		Amount:       amount,
		State:        models.PaymentStateConfirm,
		InitiatedAt:  e.now().UTC(),
	}

	if err := e.gate.claimInFlight(ctx, listingID, attempt.ID); err != nil {
		e.rejected(ctx, "initiate", listingID, attempt.ID, err)
		return nil, err
	}
	if err := e.repo.CreateAttempt(ctx, attempt); err != nil {
		if relErr := e.gate.releaseInFlight(ctx, listingID, attempt.ID); relErr != nil {
			logger.ErrorCtx(ctx, "Failed to release in-flight claim",
				logger.String("listing_id", listingID),
				logger.String("attempt_id", attempt.ID),
				logger.Err(relErr))
		}
		e.rejected(ctx, "initiate", listingID, attempt.ID, err)
		return nil, err
	}

	metrics.PaymentTransitions.WithLabelValues(string(models.PaymentStateConfirm)).Inc()
	metrics.PaymentAmount.Observe(amount.InexactFloat64())
	logger.InfoCtx(ctx, "Payment attempt initiated",
		logger.String("listing_id", listingID),
		logger.String("attempt_id", attempt.ID),
		logger.String("from", "none"),
		logger.String("to", string(models.PaymentStateConfirm)),
		logger.String("payer", utils.MaskEmail(contact)),
		logger.String("amount", amount.String()))
	return attempt, nil
}

// ConfirmAndPay moves a confirm attempt to processing and hands it to the
// rail. It returns once the rail accepted the dispatch; the outcome arrives
// through OnRailResult.
func (e *PaymentEngine) ConfirmAndPay(ctx context.Context, attemptID string) (*models.PaymentAttempt, error) {
	attempt, err := e.repo.TransitionAttempt(ctx, attemptID, models.Transition{
		From: models.PaymentStateConfirm,
		To:   models.PaymentStateProcessing,
		At:   e.now().UTC(),
	})
	if err != nil {
		e.rejected(ctx, "confirm", "", attemptID, err)
		return nil, err
	}
	e.logTransition(ctx, attempt, models.PaymentStateConfirm)

	dispatch := models.DispatchFor(attempt, *attempt.DispatchedAt)
	if err := e.rail.Dispatch(ctx, dispatch); err != nil {
		metrics.RailDispatches.WithLabelValues(e.transport, "error").Inc()
		logger.ErrorCtx(ctx, "Rail dispatch failed",
			logger.String("listing_id", attempt.ListingID),
			logger.String("attempt_id", attempt.ID),
			logger.String("transport", e.transport),
			logger.Err(err))

		failed, failErr := e.fail(ctx, attempt, models.PaymentStateProcessing, constants.ReasonDispatchFailed)
		if failErr != nil {
			return attempt, fmt.Errorf("%w (and marking it failed: %v)", apperrors.RailFailure(err.Error()), failErr)
		}
		return failed, apperrors.RailFailure(fmt.Sprintf("%s: %v", constants.ReasonDispatchFailed, err))
	}

	metrics.RailDispatches.WithLabelValues(e.transport, "ok").Inc()
	return attempt, nil
}

// OnRailResult applies the rail's single answer to a processing attempt
func (e *PaymentEngine) OnRailResult(ctx context.Context, result models.RailResult) (*models.PaymentAttempt, error) {
	if strings.TrimSpace(result.AttemptID) == "" {
		return nil, apperrors.Validation("rail result has no attempt id")
	}

	var t models.Transition
	switch result.Outcome {
	case models.RailOutcomeSuccess:
		t = models.Transition{From: models.PaymentStateProcessing, To: models.PaymentStateComplete}
	case models.RailOutcomeFailure:
		reason := strings.TrimSpace(result.Reason)
		if reason == "" {
			reason = constants.ReasonUnspecifiedFailure
		}
		t = models.Transition{From: models.PaymentStateProcessing, To: models.PaymentStateFailed, Reason: reason}
	default:
		return nil, apperrors.Validation("rail outcome %q must be success or failure", result.Outcome)
	}
	t.At = e.now().UTC()

	attempt, err := e.repo.TransitionAttempt(ctx, result.AttemptID, t)
	if err != nil {
		e.rejected(ctx, "rail_result", "", result.AttemptID, err)
		return nil, err
	}
	e.logTransition(ctx, attempt, models.PaymentStateProcessing)

	// annotate while the slot is still held
	var annotateErr error
	if attempt.State == models.PaymentStateComplete {
		if err := e.gate.annotatePaid(ctx, attempt.ListingID); err != nil {
			logger.ErrorCtx(ctx, "Failed to annotate listing as paid",
				logger.String("listing_id", attempt.ListingID),
				logger.String("attempt_id", attempt.ID),
				logger.Err(err))
			annotateErr = fmt.Errorf("failed to annotate listing %s as paid: %w", attempt.ListingID, err)
		}
	}
	if err := e.gate.releaseInFlight(ctx, attempt.ListingID, attempt.ID); err != nil {
		return attempt, fmt.Errorf("failed to release in-flight claim: %w", err)
	}
	return attempt, annotateErr
}

// Get returns an attempt by id
func (e *PaymentEngine) Get(ctx context.Context, attemptID string) (*models.PaymentAttempt, error) {
	return e.repo.GetAttempt(ctx, attemptID)
}

// ExpireStale fails attempts stuck in confirm or processing past their deadline
func (e *PaymentEngine) ExpireStale(ctx context.Context, now time.Time, confirmTTL, railTimeout time.Duration) (int, error) {
	sweeps := []struct {
		state  models.PaymentState
		ttl    time.Duration
		reason string
	}{
		{models.PaymentStateProcessing, railTimeout, constants.ReasonRailTimeout},
		{models.PaymentStateConfirm, confirmTTL, constants.ReasonConfirmExpired},
	}

	expired := 0
	for _, sweep := range sweeps {
		if sweep.ttl <= 0 {
			continue
		}
		stale, err := e.repo.ListStaleAttempts(ctx, sweep.state, now.Add(-sweep.ttl))
		if err != nil {
			return expired, fmt.Errorf("failed to list stale %s attempts: %w", sweep.state, err)
		}
		for _, attempt := range stale {
			if _, err := e.fail(ctx, attempt, sweep.state, sweep.reason); err != nil {
				if errors.Is(err, apperrors.ErrInvalidState) {
					// resolved between the listing and the transition
					continue
				}
				return expired, err
			}
			expired++
		}
	}
	return expired, nil
}

// fail moves attempt from `from` to failed and frees its listing
func (e *PaymentEngine) fail(ctx context.Context, attempt *models.PaymentAttempt, from models.PaymentState, reason string) (*models.PaymentAttempt, error) {
	failed, err := e.repo.TransitionAttempt(ctx, attempt.ID, models.Transition{
		From:   from,
		To:     models.PaymentStateFailed,
		At:     e.now().UTC(),
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}
	e.logTransition(ctx, failed, from)
	if err := e.gate.releaseInFlight(ctx, failed.ListingID, failed.ID); err != nil {
		return failed, fmt.Errorf("failed to release in-flight claim: %w", err)
	}
	return failed, nil
}

func (e *PaymentEngine) logTransition(ctx context.Context, attempt *models.PaymentAttempt, from models.PaymentState) {
	metrics.PaymentTransitions.WithLabelValues(string(attempt.State)).Inc()
	fields := []logger.Field{
		logger.String("listing_id", attempt.ListingID),
		logger.String("attempt_id", attempt.ID),
		logger.String("from", string(from)),
		logger.String("to", string(attempt.State)),
	}
	if attempt.FailureReason != "" {
		fields = append(fields, logger.String("reason", attempt.FailureReason))
	}
	logger.InfoCtx(ctx, "Payment attempt transitioned", fields...)
}

func (e *PaymentEngine) rejected(ctx context.Context, operation, listingID, attemptID string, err error) {
	if !errors.Is(err, apperrors.ErrInvalidState) &&
		!errors.Is(err, apperrors.ErrNotFound) &&
		!errors.Is(err, apperrors.ErrUnpayable) {
		return
	}
	metrics.RejectedTransitions.WithLabelValues("payment", operation).Inc()
	logger.WarnCtx(ctx, "Payment transition rejected",
		logger.String("operation", operation),
		logger.String("listing_id", listingID),
		logger.String("attempt_id", attemptID),
		logger.Err(err))
}
