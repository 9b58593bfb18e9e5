package trade

import (
	"context"
	"time"

	"github.com/piresc/tradepost/internal/pkg/models"
)

// ListingRepo stores listings. Lookups of unknown ids return apperrors.ErrNotFound.
type ListingRepo interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	// ListListings returns every listing newest-first
	ListListings(ctx context.Context) ([]*models.Listing, error)
	MarkPaymentCompleted(ctx context.Context, id string) error
}

// ProofRepo stores proof submissions. Submissions are never deleted.
type ProofRepo interface {
	CreateProof(ctx context.Context, proof *models.Proof) error
	GetProof(ctx context.Context, id string) (*models.Proof, error)
	// VerifyProof atomically moves a pending proof to verified. A proof that is
	// already verified yields apperrors.ErrInvalidState.
	VerifyProof(ctx context.Context, id, notes string, at time.Time) (*models.Proof, error)
	ListPendingProofs(ctx context.Context) ([]*models.Proof, error)
}

// PaymentRepo stores payment attempts
type PaymentRepo interface {
	CreateAttempt(ctx context.Context, attempt *models.PaymentAttempt) error
	GetAttempt(ctx context.Context, id string) (*models.PaymentAttempt, error)
	// TransitionAttempt applies t only if the attempt is still in t.From,
	// otherwise it returns apperrors.ErrInvalidState naming the current state.
	TransitionAttempt(ctx context.Context, id string, t models.Transition) (*models.PaymentAttempt, error)
	// ListStaleAttempts returns attempts in state whose last transition is older than before
	ListStaleAttempts(ctx context.Context, state models.PaymentState, before time.Time) ([]*models.PaymentAttempt, error)
}

// LinkRepo holds the two cross-entity mappings owned by the trade service:
// listing to current proof, and listing to in-flight payment attempt.
type LinkRepo interface {
	SetCurrentProof(ctx context.Context, listingID, proofID string) error
	// GetCurrentProof returns "" when the listing has no proof
	GetCurrentProof(ctx context.Context, listingID string) (string, error)
	// ClaimInFlight records claim as the listing's in-flight holder if none is held
	ClaimInFlight(ctx context.Context, listingID string, claim models.InFlightClaim) (bool, error)
	// ReleaseInFlight clears the claim only if attemptID still holds it
	ReleaseInFlight(ctx context.Context, listingID, attemptID string) error
	// GetInFlight returns a zero claim when no attempt holds the listing
	GetInFlight(ctx context.Context, listingID string) (models.InFlightClaim, error)
}
