package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/tradepost/internal/pkg/circuitbreaker"
	"github.com/piresc/tradepost/internal/pkg/models"
	natspkg "github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/services/trade"
)

const (
	TransportNATS = "nats"
	TransportHTTP = "http"
)

// RailGW sends every dispatch through a circuit breaker so a dead rail
// fails fast instead of piling up processing attempts.
type RailGW struct {
	transport trade.RailGW
	breaker   *circuitbreaker.CircuitBreaker
}

// NewRailGW picks the transport named in cfg.Rail.Transport
func NewRailGW(cfg *models.Config, natsClient *natspkg.Client) (*RailGW, error) {
	var transport trade.RailGW
	switch cfg.Rail.Transport {
	case "", TransportNATS:
		if natsClient == nil {
			return nil, fmt.Errorf("rail transport %q needs a NATS connection", TransportNATS)
		}
		transport = NewNATSRailGateway(natsClient)
	case TransportHTTP:
		if cfg.Rail.HTTPURL == "" {
			return nil, fmt.Errorf("rail transport %q needs RAIL_HTTP_URL", TransportHTTP)
		}
		transport = NewHTTPRailGateway(cfg.Rail)
	default:
		return nil, fmt.Errorf("unknown rail transport %q", cfg.Rail.Transport)
	}
	return NewRailGWWithTransport(transport, cfg.Rail.Breaker), nil
}

// NewRailGWWithTransport wraps an arbitrary transport with the rail breaker
func NewRailGWWithTransport(transport trade.RailGW, breaker models.BreakerConfig) *RailGW {
	return &RailGW{
		transport: transport,
		breaker:   circuitbreaker.New(circuitbreaker.FromModel("payment-rail", breaker)),
	}
}

// Dispatch forwards to the transport unless the breaker is open
func (g *RailGW) Dispatch(ctx context.Context, dispatch models.RailDispatch) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.transport.Dispatch(ctx, dispatch)
	})
}

// BreakerState reports the rail breaker state for readiness output
func (g *RailGW) BreakerState() string {
	return g.breaker.State()
}

var _ trade.RailGW = (*RailGW)(nil)
