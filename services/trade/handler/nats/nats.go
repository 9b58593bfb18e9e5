package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/models"
	natspkg "github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/internal/pkg/requestcontext"
	"github.com/piresc/tradepost/services/trade"
)

// RailHandler consumes payment rail results
type RailHandler struct {
	tradeUC    trade.TradeUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewRailHandler creates a new rail result NATS handler
func NewRailHandler(tradeUC trade.TradeUC, client *natspkg.Client) *RailHandler {
	return &RailHandler{
		tradeUC:    tradeUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to rail results in the trade service queue group
func (h *RailHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectRailResult, constants.QueueTradeService, h.handleRailResult)
	if err != nil {
		return fmt.Errorf("failed to subscribe to rail results: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

// Close drops every subscription
func (h *RailHandler) Close() error {
	var errs []error
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			errs = append(errs, err)
		}
	}
	h.subs = nil
	return errors.Join(errs...)
}

// handleRailResult applies one result. Malformed payloads and results the
// lifecycle refuses are logged and dropped so they are never retried.
func (h *RailHandler) handleRailResult(data []byte) error {
	ctx := requestcontext.WithRequestContext(context.Background(),
		requestcontext.NewRequestContext(constants.QueueTradeService))

	var result models.RailResult
	if err := json.Unmarshal(data, &result); err != nil {
		logger.WarnCtx(ctx, "Dropping malformed rail result",
			logger.Int("bytes", len(data)),
			logger.Err(err))
		return nil
	}

	attempt, err := h.tradeUC.OnRailResult(ctx, result)
	switch {
	case err == nil:
		logger.InfoCtx(ctx, "Rail result applied",
			logger.String("attempt_id", attempt.ID),
			logger.String("listing_id", attempt.ListingID),
			logger.String("state", string(attempt.State)))
		return nil
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInvalidState):
		logger.WarnCtx(ctx, "Rail result ignored",
			logger.String("attempt_id", result.AttemptID),
			logger.String("outcome", string(result.Outcome)),
			logger.Err(err))
		return nil
	}
	return fmt.Errorf("failed to apply rail result for attempt %s: %w", result.AttemptID, err)
}
