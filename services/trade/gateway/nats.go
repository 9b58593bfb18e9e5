package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/models"
	natspkg "github.com/piresc/tradepost/internal/pkg/nats"
)

// NATSRailGateway publishes dispatch requests for a rail worker to pick up
type NATSRailGateway struct {
	natsClient *natspkg.Client
}

// NewNATSRailGateway creates a NATS rail gateway
func NewNATSRailGateway(client *natspkg.Client) *NATSRailGateway {
	return &NATSRailGateway{natsClient: client}
}

// Dispatch publishes the request and flushes so a dead connection surfaces here
func (g *NATSRailGateway) Dispatch(ctx context.Context, dispatch models.RailDispatch) error {
	if err := g.natsClient.PublishJSON(constants.SubjectRailDispatch, dispatch); err != nil {
		return fmt.Errorf("failed to publish rail dispatch: %w", err)
	}
	if err := g.natsClient.Flush(); err != nil {
		return fmt.Errorf("failed to flush rail dispatch: %w", err)
	}

	logger.DebugCtx(ctx, "Rail dispatch published",
		logger.String("attempt_id", dispatch.AttemptID),
		logger.String("subject", constants.SubjectRailDispatch))
	return nil
}
