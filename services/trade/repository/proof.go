package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
)

const proofColumns = `id, listing_id, screenshots, description, status, notes, submitted_at, verified_at`

// ProofRepo stores proof submissions in postgres
type ProofRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProofRepository creates a postgres proof repository
func NewProofRepository(cfg *models.Config, db *sqlx.DB) *ProofRepo {
	return &ProofRepo{cfg: cfg, db: db}
}

// CreateProof inserts a proof submission
func (r *ProofRepo) CreateProof(ctx context.Context, proof *models.Proof) error {
	query := `
		INSERT INTO proofs (
			id, listing_id, screenshots, description, status, notes, submitted_at, verified_at
		) VALUES (
			:id, :listing_id, :screenshots, :description, :status, :notes, :submitted_at, :verified_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, proof.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert proof: %w", err)
	}
	return nil
}

// GetProof fetches a proof by id
func (r *ProofRepo) GetProof(ctx context.Context, id string) (*models.Proof, error) {
	query := `SELECT ` + proofColumns + ` FROM proofs WHERE id = $1`

	var dto models.ProofDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if missingRow(err) {
			return nil, apperrors.NotFound("proof", id)
		}
		return nil, fmt.Errorf("failed to get proof: %w", err)
	}
	return dto.ToProof(), nil
}

// VerifyProof flips a pending proof to verified in a single conditional update
func (r *ProofRepo) VerifyProof(ctx context.Context, id, notes string, at time.Time) (*models.Proof, error) {
	query := `
		UPDATE proofs
		SET status = $2, notes = $3, verified_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + proofColumns

	var dto models.ProofDTO
	err := r.db.GetContext(ctx, &dto, query, id, models.ProofStatusVerified, notes, at, models.ProofStatusPending)
	if err == nil {
		return dto.ToProof(), nil
	}
	if pqCode(err, invalidTextRepresentation) {
		return nil, apperrors.NotFound("proof", id)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to verify proof: %w", err)
	}

	var status models.ProofStatus
	if err := r.db.GetContext(ctx, &status, `SELECT status FROM proofs WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("proof", id)
		}
		return nil, fmt.Errorf("failed to get proof status: %w", err)
	}
	return nil, apperrors.InvalidState("proof %s is %s, only pending proofs can be verified", id, status)
}

// ListPendingProofs returns pending proofs oldest first
func (r *ProofRepo) ListPendingProofs(ctx context.Context) ([]*models.Proof, error) {
	query := `SELECT ` + proofColumns + ` FROM proofs WHERE status = $1 ORDER BY submitted_at ASC`

	var dtos []models.ProofDTO
	if err := r.db.SelectContext(ctx, &dtos, query, models.ProofStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending proofs: %w", err)
	}

	proofs := make([]*models.Proof, 0, len(dtos))
	for i := range dtos {
		proofs = append(proofs, dtos[i].ToProof())
	}
	return proofs, nil
}
