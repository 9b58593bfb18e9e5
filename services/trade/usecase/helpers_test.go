package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/services/trade/mocks"
	"github.com/piresc/tradepost/services/trade/repository"
)

// fakeClock is a settable clock shared by a test and the service
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	svc      *TradeService
	clock    *fakeClock
	rail     *mocks.MockRailGW
	listings *repository.MemoryListingRepo
	proofs   *repository.MemoryProofRepo
	payments *repository.MemoryPaymentRepo
	links    *repository.MemoryLinkRepo
}

func testConfig() *models.Config {
	return &models.Config{Rail: models.RailConfig{
		Transport:  "nats",
		Timeout:    10 * time.Minute,
		ConfirmTTL: 30 * time.Minute,
	}}
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		clock:    newFakeClock(),
		rail:     mocks.NewMockRailGW(ctrl),
		listings: repository.NewMemoryListingRepository(),
		proofs:   repository.NewMemoryProofRepository(),
		payments: repository.NewMemoryPaymentRepository(),
		links:    repository.NewMemoryLinkRepository(),
	}
	env.svc = NewTradeService(testConfig(), env.listings, env.proofs, env.payments, env.links, env.rail,
		WithClock(env.clock.Now))
	return env
}

func newMockedService(t *testing.T) (*TradeService, *mocks.MockListingRepo, *mocks.MockProofRepo, *mocks.MockPaymentRepo, *mocks.MockLinkRepo, *mocks.MockRailGW) {
	ctrl := gomock.NewController(t)
	listingRepo := mocks.NewMockListingRepo(ctrl)
	proofRepo := mocks.NewMockProofRepo(ctrl)
	paymentRepo := mocks.NewMockPaymentRepo(ctrl)
	linkRepo := mocks.NewMockLinkRepo(ctrl)
	railGW := mocks.NewMockRailGW(ctrl)

	svc := NewTradeService(testConfig(), listingRepo, proofRepo, paymentRepo, linkRepo, railGW,
		WithClock(newFakeClock().Now))
	return svc, listingRepo, proofRepo, paymentRepo, linkRepo, railGW
}

func pricedListing(price string) models.NewListing {
	return models.NewListing{
		Title:       "Shiny Galar Heroes Bundle - Lancer's Zacian & Arthur's Zamazenta",
		Category:    models.CategoryCodes,
		Game:        "Pokemon Go",
		Author:      "TrainerAlex92",
		AuthorFlair: "Master Ball",
		Price:       price,
		Description: "Codes are untouched and region-free.",
		Tags:        []string{"shiny", "legendary"},
	}
}
