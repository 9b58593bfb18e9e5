package trade

import (
	"context"

	"github.com/piresc/tradepost/internal/pkg/models"
)

// RailGW hands payment attempts to the external payment rail. Dispatch only
// hands off; the outcome arrives later through OnRailResult.
type RailGW interface {
	Dispatch(ctx context.Context, dispatch models.RailDispatch) error
}
