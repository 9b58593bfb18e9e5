package usecase

import (
	"time"

	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/services/trade"
)

// Clock returns the current time
type Clock func() time.Time

// Option customizes a TradeService
type Option func(*TradeService)

// WithClock replaces the wall clock, mostly for tests
func WithClock(clock Clock) Option {
	return func(s *TradeService) {
		s.now = clock
	}
}

// TradeService owns the listing-to-proof and listing-to-attempt mappings and
// fronts the three engines with cross-entity checks.
type TradeService struct {
	cfg   *models.Config
	now   Clock
	links trade.LinkRepo

	listings *ListingStore
	proofs   *ProofEngine
	payments *PaymentEngine
}

// NewTradeService wires the listing store, proof engine and payment engine
func NewTradeService(
	cfg *models.Config,
	listingRepo trade.ListingRepo,
	proofRepo trade.ProofRepo,
	paymentRepo trade.PaymentRepo,
	linkRepo trade.LinkRepo,
	railGW trade.RailGW,
	opts ...Option,
) *TradeService {
	s := &TradeService{
		cfg:   cfg,
		now:   models.Now,
		links: linkRepo,
	}
	for _, opt := range opts {
		opt(s)
	}

	clock := func() time.Time { return s.now() }
	s.listings = NewListingStore(listingRepo, clock)
	s.proofs = NewProofEngine(proofRepo, s, clock)
	s.payments = NewPaymentEngine(paymentRepo, railGW, s, clock, railTransport(cfg))
	return s
}

func railTransport(cfg *models.Config) string {
	if cfg == nil || cfg.Rail.Transport == "" {
		return "nats"
	}
	return cfg.Rail.Transport
}

var _ trade.TradeUC = (*TradeService)(nil)
var _ trade.PaymentSweeper = (*TradeService)(nil)
