package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
)

const listingColumns = `id, title, category, game, author, author_flair, price,
	description, tags, replies, payment_completed, created_at`

// ListingRepo stores listings in postgres
type ListingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewListingRepository creates a postgres listing repository
func NewListingRepository(cfg *models.Config, db *sqlx.DB) *ListingRepo {
	return &ListingRepo{cfg: cfg, db: db}
}

// CreateListing inserts a listing
func (r *ListingRepo) CreateListing(ctx context.Context, listing *models.Listing) error {
	query := `
		INSERT INTO listings (
			id, title, category, game, author, author_flair, price,
			description, tags, replies, payment_completed, created_at
		) VALUES (
			:id, :title, :category, :game, :author, :author_flair, :price,
			:description, :tags, :replies, :payment_completed, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, listing.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// GetListing fetches a listing by id
func (r *ListingRepo) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	var dto models.ListingDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("listing", id)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return dto.ToListing(), nil
}

// ListListings returns all listings newest-first. ULIDs break timestamp ties.
func (r *ListingRepo) ListListings(ctx context.Context) ([]*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC, id DESC`

	var dtos []models.ListingDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := make([]*models.Listing, 0, len(dtos))
	for i := range dtos {
		listings = append(listings, dtos[i].ToListing())
	}
	return listings, nil
}

// MarkPaymentCompleted sets the payment annotation of a listing
func (r *ListingRepo) MarkPaymentCompleted(ctx context.Context, id string) error {
	query := `UPDATE listings SET payment_completed = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark listing paid: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("listing", id)
	}
	return nil
}
