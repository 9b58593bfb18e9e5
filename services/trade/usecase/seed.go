package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/models"
)

// Seed replays seed entries through the listing store and the proof engine.
// Each listing is backdated by its age and keeps its reply count.
func (s *TradeService) Seed(ctx context.Context, seeds []models.SeedListing) ([]*models.Listing, error) {
	now := s.now()
	created := make([]*models.Listing, 0, len(seeds))

	for i, seed := range seeds {
		replies := seed.Replies
		if replies < 0 {
			replies = 0
		}
		listing, err := s.listings.create(ctx, seed.NewListing(), now.Add(-seed.Age), replies)
		if err != nil {
			return created, fmt.Errorf("seed entry %d (%q): %w", i, seed.Title, err)
		}

		if seed.Proof != nil {
			proof, err := s.proofs.Submit(ctx, listing.ID, seed.Proof.Screenshots, seed.Proof.Description)
			if err != nil {
				return created, fmt.Errorf("seed entry %d proof: %w", i, err)
			}
			if seed.Proof.Verified {
				if _, err := s.proofs.Verify(ctx, proof.ID, seed.Proof.Notes); err != nil {
					return created, fmt.Errorf("seed entry %d verification: %w", i, err)
				}
			}
		}

		if err := s.decorate(ctx, listing); err != nil {
			return created, err
		}
		created = append(created, listing)
	}

	logger.Info("Seed data loaded", logger.Int("listings", len(created)))
	return created, nil
}
