package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/services/trade"
)

// ListingStore validates and persists listings
type ListingStore struct {
	repo trade.ListingRepo
	now  Clock
}

// NewListingStore creates a listing store over repo
func NewListingStore(repo trade.ListingRepo, now Clock) *ListingStore {
	return &ListingStore{repo: repo, now: now}
}

// Create validates the fields and stores a new listing stamped with now
func (s *ListingStore) Create(ctx context.Context, in models.NewListing) (*models.Listing, error) {
	return s.create(ctx, in, s.now(), 0)
}

func (s *ListingStore) create(ctx context.Context, in models.NewListing, createdAt time.Time, replies int) (*models.Listing, error) {
	listing, err := buildListing(in)
	if err != nil {
		return nil, err
	}
	listing.ID = ulid.Make().String()
	listing.CreatedAt = createdAt.UTC()
	listing.Replies = replies

	if err := s.repo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	metrics.ListingsCreated.WithLabelValues(string(listing.Category)).Inc()
	logger.InfoCtx(ctx, "Listing created",
		logger.String("listing_id", listing.ID),
		logger.String("category", string(listing.Category)),
		logger.Bool("priced", listing.HasPrice()))
	return listing, nil
}

// Get returns the stored listing without derived flags
func (s *ListingStore) Get(ctx context.Context, id string) (*models.Listing, error) {
	return s.repo.GetListing(ctx, id)
}

// List returns every listing newest-first
func (s *ListingStore) List(ctx context.Context) ([]*models.Listing, error) {
	return s.repo.ListListings(ctx)
}

// MarkPaymentCompleted sets the display annotation. Price is never touched.
func (s *ListingStore) MarkPaymentCompleted(ctx context.Context, id string) error {
	return s.repo.MarkPaymentCompleted(ctx, id)
}

func buildListing(in models.NewListing) (*models.Listing, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation("listing title must not be empty")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, apperrors.Validation("listing description must not be empty")
	}
	category := models.Category(strings.ToLower(strings.TrimSpace(string(in.Category))))
	if !category.Valid() {
		return nil, apperrors.Validation("category %q is not one of codes, pokemon, items, friends, mobile", in.Category)
	}

	return &models.Listing{
		Title:       title,
		Category:    category,
		Game:        strings.TrimSpace(in.Game),
		Author:      strings.TrimSpace(in.Author),
		AuthorFlair: strings.TrimSpace(in.AuthorFlair),
		Price:       strings.TrimSpace(in.Price),
		Description: description,
		Tags:        models.NormalizeTags(in.Tags),
	}, nil
}
