package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/pkg/retry"
)

// CreateListing validates and stores a new listing
func (s *TradeService) CreateListing(ctx context.Context, in models.NewListing) (*models.Listing, error) {
	listing, err := s.listings.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// GetListing returns a listing with its proof flags derived from the current proof
func (s *TradeService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	listing, err := s.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// SubmitProof attaches a new pending proof to an existing listing
func (s *TradeService) SubmitProof(ctx context.Context, listingID string, screenshots []string, description string) (*models.Proof, error) {
	return s.proofs.Submit(ctx, listingID, screenshots, description)
}

// VerifyProof is the moderation entry point. It succeeds once per proof.
func (s *TradeService) VerifyProof(ctx context.Context, proofID, notes string) (*models.Proof, error) {
	return s.proofs.Verify(ctx, proofID, notes)
}

// GetProof returns any proof by id, including unlinked ones
func (s *TradeService) GetProof(ctx context.Context, proofID string) (*models.Proof, error) {
	return s.proofs.Get(ctx, proofID)
}

// CurrentProof returns the proof currently linked to the listing
func (s *TradeService) CurrentProof(ctx context.Context, listingID string) (*models.Proof, error) {
	if err := s.listingExists(ctx, listingID); err != nil {
		return nil, err
	}
	proof, err := s.proofs.Current(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		return nil, apperrors.NotFound("proof for listing", listingID)
	}
	return proof, nil
}

// PendingProofs lists proofs awaiting moderation
func (s *TradeService) PendingProofs(ctx context.Context) ([]*models.Proof, error) {
	return s.proofs.Pending(ctx)
}

// HasProof reports whether the listing has a current proof
func (s *TradeService) HasProof(ctx context.Context, listingID string) (bool, error) {
	if err := s.listingExists(ctx, listingID); err != nil {
		return false, err
	}
	return s.proofs.HasProof(ctx, listingID)
}

// IsVerified reports whether the listing's current proof is verified
func (s *TradeService) IsVerified(ctx context.Context, listingID string) (bool, error) {
	if err := s.listingExists(ctx, listingID); err != nil {
		return false, err
	}
	return s.proofs.IsVerified(ctx, listingID)
}

// InitiatePayment rejects unpriced listings before the payment engine runs its own checks
func (s *TradeService) InitiatePayment(ctx context.Context, listingID, payerContact string) (*models.PaymentAttempt, error) {
	if _, err := s.payableListing(ctx, listingID); err != nil {
		return nil, err
	}
	return s.payments.Initiate(ctx, listingID, payerContact)
}

// ConfirmAndPay dispatches a confirmed attempt to the rail
func (s *TradeService) ConfirmAndPay(ctx context.Context, attemptID string) (*models.PaymentAttempt, error) {
	return s.payments.ConfirmAndPay(ctx, attemptID)
}

// OnRailResult applies the rail's answer for an attempt
func (s *TradeService) OnRailResult(ctx context.Context, result models.RailResult) (*models.PaymentAttempt, error) {
	return s.payments.OnRailResult(ctx, result)
}

// GetPayment returns a payment attempt by id
func (s *TradeService) GetPayment(ctx context.Context, attemptID string) (*models.PaymentAttempt, error) {
	return s.payments.Get(ctx, attemptID)
}

// ExpireStalePayments fails attempts the payer or the rail abandoned
func (s *TradeService) ExpireStalePayments(ctx context.Context, now time.Time) (int, error) {
	var confirmTTL, railTimeout time.Duration
	if s.cfg != nil {
		confirmTTL, railTimeout = s.cfg.Rail.ConfirmTTL, s.cfg.Rail.Timeout
	}
	return s.payments.ExpireStale(ctx, now, confirmTTL, railTimeout)
}

// Catalog returns the fixed reference data for listing forms
func (s *TradeService) Catalog() models.Catalog {
	return models.DefaultCatalog()
}

func (s *TradeService) decorate(ctx context.Context, listing *models.Listing) error {
	proof, err := s.proofs.Current(ctx, listing.ID)
	if err != nil {
		return fmt.Errorf("failed to resolve proof for listing %s: %w", listing.ID, err)
	}
	listing.HasProof = proof != nil
	listing.IsVerified = proof != nil && proof.Verified()
	return nil
}

func (s *TradeService) listingExists(ctx context.Context, listingID string) error {
	_, err := s.listings.Get(ctx, listingID)
	return err
}

func (s *TradeService) linkProof(ctx context.Context, listingID, proofID string) error {
	if err := s.links.SetCurrentProof(ctx, listingID, proofID); err != nil {
		return fmt.Errorf("failed to link proof %s to listing %s: %w", proofID, listingID, err)
	}
	return nil
}

func (s *TradeService) currentProofID(ctx context.Context, listingID string) (string, error) {
	proofID, err := s.links.GetCurrentProof(ctx, listingID)
	if err != nil {
		return "", fmt.Errorf("failed to read current proof of listing %s: %w", listingID, err)
	}
	return proofID, nil
}

func (s *TradeService) payableListing(ctx context.Context, listingID string) (*models.Listing, error) {
	listing, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.HasPrice() {
		return nil, apperrors.Unpayable(listingID)
	}
	return listing, nil
}

// claimInFlight takes the listing's payment slot. A slot held by an attempt
// that already ended is reclaimed once. A holder that is not stored yet is
// mid-initiate and counts as live until constants.InFlightClaimGrace passes.
func (s *TradeService) claimInFlight(ctx context.Context, listingID, attemptID string) error {
	claim := models.InFlightClaim{AttemptID: attemptID, ClaimedAt: s.now().UTC()}
	for retry := 0; retry < 2; retry++ {
		ok, err := s.links.ClaimInFlight(ctx, listingID, claim)
		if err != nil {
			return fmt.Errorf("failed to claim payment slot of listing %s: %w", listingID, err)
		}
		if ok {
			return nil
		}

		holder, err := s.links.GetInFlight(ctx, listingID)
		if err != nil {
			return fmt.Errorf("failed to read payment slot of listing %s: %w", listingID, err)
		}
		if !holder.Held() {
			continue
		}
		live, err := s.claimLive(ctx, holder)
		if err != nil {
			return err
		}
		if live {
			return apperrors.InvalidState("listing %s already has payment attempt %s in flight", listingID, holder.AttemptID)
		}

		logger.WarnCtx(ctx, "Reclaiming stale payment slot",
			logger.String("listing_id", listingID),
			logger.String("attempt_id", holder.AttemptID),
			logger.String("claimed_at", holder.ClaimedAt.Format(time.RFC3339)))
		if err := s.links.ReleaseInFlight(ctx, listingID, holder.AttemptID); err != nil {
			return fmt.Errorf("failed to release stale payment slot of listing %s: %w", listingID, err)
		}
	}
	return apperrors.InvalidState("listing %s payment slot is contended", listingID)
}

func (s *TradeService) claimLive(ctx context.Context, claim models.InFlightClaim) (bool, error) {
	attempt, err := s.payments.Get(ctx, claim.AttemptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.now().Sub(claim.ClaimedAt) < constants.InFlightClaimGrace, nil
		}
		return false, err
	}
	return attempt.State.InFlight(), nil
}

func (s *TradeService) releaseInFlight(ctx context.Context, listingID, attemptID string) error {
	return s.links.ReleaseInFlight(ctx, listingID, attemptID)
}

var annotateRetry = retry.New("annotate-paid", retry.Config{
	MaxRetries: 2,
	BaseDelay:  20 * time.Millisecond,
	MaxDelay:   200 * time.Millisecond,
	Multiplier: 2.0,
	Retryable:  func(err error) bool { return !errors.Is(err, apperrors.ErrNotFound) },
})

func (s *TradeService) annotatePaid(ctx context.Context, listingID string) error {
	return annotateRetry.Execute(ctx, func(ctx context.Context) error {
		return s.listings.MarkPaymentCompleted(ctx, listingID)
	})
}
