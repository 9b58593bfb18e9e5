package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/services/trade"
)

// proofLinker is the slice of the trade service the proof engine may touch
type proofLinker interface {
	listingExists(ctx context.Context, listingID string) error
	linkProof(ctx context.Context, listingID, proofID string) error
	currentProofID(ctx context.Context, listingID string) (string, error)
}

// ProofEngine runs the none -> pending -> verified lifecycle of proof submissions
type ProofEngine struct {
	repo   trade.ProofRepo
	linker proofLinker
	now    Clock
}

// NewProofEngine creates a proof engine
func NewProofEngine(repo trade.ProofRepo, linker proofLinker, now Clock) *ProofEngine {
	return &ProofEngine{repo: repo, linker: linker, now: now}
}

// Submit stores a pending proof and makes it the listing's current proof.
// The previous proof stays in storage but is no longer linked.
func (e *ProofEngine) Submit(ctx context.Context, listingID string, screenshots []string, description string) (*models.Proof, error) {
	if err := e.linker.listingExists(ctx, listingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Also(err, apperrors.ErrValidation)
		}
		return nil, err
	}

	shots := cleanScreenshots(screenshots)
	if len(shots) == 0 {
		metrics.RejectedTransitions.WithLabelValues("proof", "submit").Inc()
		return nil, apperrors.Validation("proof for listing %s needs at least one screenshot", listingID)
	}

	proof := &models.Proof{
		ID:          uuid.New().String(),
		ListingID:   listingID,
		Screenshots: shots,
		Description: strings.TrimSpace(description),
		Status:      models.ProofStatusPending,
		SubmittedAt: e.now().UTC(),
	}
	if err := e.repo.CreateProof(ctx, proof); err != nil {
		return nil, err
	}
	if err := e.linker.linkProof(ctx, listingID, proof.ID); err != nil {
		return nil, err
	}

	metrics.ProofTransitions.WithLabelValues(string(models.ProofStatusPending)).Inc()
	logger.InfoCtx(ctx, "Proof submitted",
		logger.String("listing_id", listingID),
		logger.String("proof_id", proof.ID),
		logger.String("from", "none"),
		logger.String("to", string(models.ProofStatusPending)),
		logger.Int("screenshots", len(shots)))
	return proof, nil
}

// Verify moves a pending proof to verified. It succeeds at most once per proof.
func (e *ProofEngine) Verify(ctx context.Context, proofID, notes string) (*models.Proof, error) {
	proof, err := e.repo.VerifyProof(ctx, proofID, strings.TrimSpace(notes), e.now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidState) {
			metrics.RejectedTransitions.WithLabelValues("proof", "verify").Inc()
			logger.WarnCtx(ctx, "Proof verification rejected",
				logger.String("proof_id", proofID),
				logger.Err(err))
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Also(err, apperrors.ErrInvalidState)
		}
		return nil, err
	}

	metrics.ProofTransitions.WithLabelValues(string(models.ProofStatusVerified)).Inc()
	logger.InfoCtx(ctx, "Proof verified",
		logger.String("listing_id", proof.ListingID),
		logger.String("proof_id", proof.ID),
		logger.String("from", string(models.ProofStatusPending)),
		logger.String("to", string(models.ProofStatusVerified)))
	return proof, nil
}

// Get returns a proof by id, linked or not
func (e *ProofEngine) Get(ctx context.Context, proofID string) (*models.Proof, error) {
	return e.repo.GetProof(ctx, proofID)
}

// Pending lists proofs awaiting moderation
func (e *ProofEngine) Pending(ctx context.Context) ([]*models.Proof, error) {
	return e.repo.ListPendingProofs(ctx)
}

// Current returns the listing's current proof, or nil when it has none
func (e *ProofEngine) Current(ctx context.Context, listingID string) (*models.Proof, error) {
	proofID, err := e.linker.currentProofID(ctx, listingID)
	if err != nil || proofID == "" {
		return nil, err
	}
	return e.repo.GetProof(ctx, proofID)
}

// HasProof reports whether the listing has a current proof
func (e *ProofEngine) HasProof(ctx context.Context, listingID string) (bool, error) {
	proofID, err := e.linker.currentProofID(ctx, listingID)
	if err != nil {
		return false, err
	}
	return proofID != "", nil
}

// IsVerified reports whether the listing's current proof is verified
func (e *ProofEngine) IsVerified(ctx context.Context, listingID string) (bool, error) {
	proof, err := e.Current(ctx, listingID)
	if err != nil {
		return false, err
	}
	return proof != nil && proof.Verified(), nil
}

func cleanScreenshots(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
