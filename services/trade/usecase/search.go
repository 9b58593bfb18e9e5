package usecase

import (
	"context"
	"strings"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
)

// Search filters listings by category and a case-insensitive substring of
// title, description or tags. An empty query and the "all" category match
// everything. Results keep the store's newest-first order.
func (s *TradeService) Search(ctx context.Context, query string, category models.Category) ([]*models.Listing, error) {
	category = models.Category(strings.ToLower(strings.TrimSpace(string(category))))
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll && !category.Valid() {
		return nil, apperrors.Validation("category %q is not a searchable category", category)
	}
	needle := strings.ToLower(query)

	all, err := s.listings.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Listing, 0, len(all))
	for _, listing := range all {
		if category != models.CategoryAll && listing.Category != category {
			continue
		}
		if !listing.Matches(needle) {
			continue
		}
		if err := s.decorate(ctx, listing); err != nil {
			return nil, err
		}
		out = append(out, listing)
	}
	return out, nil
}

// AvailableModals lists the dialogs a browser may open for the listing
func (s *TradeService) AvailableModals(ctx context.Context, listingID string) (models.ModalList, error) {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	modals := models.ModalList{}
	if listing.HasProof {
		modals = append(modals, models.ViewingProof{ListingID: listing.ID})
	}
	modals = append(modals, models.SubmittingProof{ListingID: listing.ID})
	if listing.HasPrice() {
		holder, err := s.links.GetInFlight(ctx, listing.ID)
		if err != nil {
			return nil, err
		}
		live := false
		if holder.Held() {
			if live, err = s.claimLive(ctx, holder); err != nil {
				return nil, err
			}
		}
		if !live {
			modals = append(modals, models.PayingFor{ListingID: listing.ID})
		}
	}
	return modals, nil
}
