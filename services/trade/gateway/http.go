package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/piresc/tradepost/internal/pkg/constants"
	httpclient "github.com/piresc/tradepost/internal/pkg/http"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/pkg/retry"
)

const dispatchEndpoint = "/dispatch"

// HTTPRailGateway posts dispatch requests to a provider webhook
type HTTPRailGateway struct {
	client  *httpclient.APIKeyClient
	retrier *retry.Retrier
}

// NewHTTPRailGateway creates an HTTP rail gateway for the configured provider
func NewHTTPRailGateway(cfg models.RailConfig) *HTTPRailGateway {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.HTTPRetries
	if cfg.HTTPRetryWait > 0 {
		retryCfg.BaseDelay = cfg.HTTPRetryWait
	}
	retryCfg.Retryable = transientDispatchError

	return &HTTPRailGateway{
		client:  httpclient.NewAPIKeyClient(cfg.HTTPAPIKey, constants.ServicePaymentRail, cfg.HTTPURL, cfg.HTTPTimeout),
		retrier: retry.New("rail-dispatch", retryCfg),
	}
}

// Dispatch posts the request. Any 2xx means the provider accepted it.
func (g *HTTPRailGateway) Dispatch(ctx context.Context, dispatch models.RailDispatch) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, dispatchEndpoint, dispatch, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to post rail dispatch: %w", err)
	}
	return nil
}

// 4xx answers are final; 5xx and transport errors may succeed on retry
func transientDispatchError(err error) bool {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
