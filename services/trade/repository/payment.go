package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
)

const (
	attemptColumns = `id, listing_id, payer_contact, amount_raw, amount, state,
	failure_reason, initiated_at, dispatched_at, resolved_at`

	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

func pqCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

// missingRow reports errors that mean no row has the id, including ids the
// uuid column cannot parse
func missingRow(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || pqCode(err, invalidTextRepresentation)
}

// PaymentRepo stores payment attempts in postgres
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a postgres payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{cfg: cfg, db: db}
}

// CreateAttempt inserts an attempt. The partial unique index on in-flight
// attempts rejects a second live attempt for the same listing.
func (r *PaymentRepo) CreateAttempt(ctx context.Context, attempt *models.PaymentAttempt) error {
	query := `
		INSERT INTO payment_attempts (
			id, listing_id, payer_contact, amount_raw, amount, state,
			failure_reason, initiated_at, dispatched_at, resolved_at
		) VALUES (
			:id, :listing_id, :payer_contact, :amount_raw, :amount, :state,
			:failure_reason, :initiated_at, :dispatched_at, :resolved_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, attempt); err != nil {
		if pqCode(err, uniqueViolation) {
			return apperrors.InvalidState("listing %s already has a payment attempt in flight", attempt.ListingID)
		}
		return fmt.Errorf("failed to insert payment attempt: %w", err)
	}
	return nil
}

// GetAttempt fetches an attempt by id
func (r *PaymentRepo) GetAttempt(ctx context.Context, id string) (*models.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts WHERE id = $1`

	var attempt models.PaymentAttempt
	if err := r.db.GetContext(ctx, &attempt, query, id); err != nil {
		if missingRow(err) {
			return nil, apperrors.NotFound("payment attempt", id)
		}
		return nil, fmt.Errorf("failed to get payment attempt: %w", err)
	}
	return &attempt, nil
}

// TransitionAttempt applies t with a compare-and-swap on the state column
func (r *PaymentRepo) TransitionAttempt(ctx context.Context, id string, t models.Transition) (*models.PaymentAttempt, error) {
	stamp := &models.PaymentAttempt{}
	stamp.Apply(t)

	query := `
		UPDATE payment_attempts
		SET state = $2,
			dispatched_at = COALESCE($3, dispatched_at),
			resolved_at = COALESCE($4, resolved_at),
			failure_reason = COALESCE(NULLIF($5, ''), failure_reason)
		WHERE id = $1 AND state = $6
		RETURNING ` + attemptColumns

	var attempt models.PaymentAttempt
	err := r.db.GetContext(ctx, &attempt, query,
		id, t.To, stamp.DispatchedAt, stamp.ResolvedAt, stamp.FailureReason, t.From)
	if err == nil {
		return &attempt, nil
	}
	if pqCode(err, invalidTextRepresentation) {
		return nil, apperrors.NotFound("payment attempt", id)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to transition payment attempt: %w", err)
	}

	var state models.PaymentState
	if err := r.db.GetContext(ctx, &state, `SELECT state FROM payment_attempts WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment attempt", id)
		}
		return nil, fmt.Errorf("failed to get payment attempt state: %w", err)
	}
	return nil, rejectTransition(id, state, t)
}

// ListStaleAttempts returns attempts in state whose last transition happened before `before`
func (r *PaymentRepo) ListStaleAttempts(ctx context.Context, state models.PaymentState, before time.Time) ([]*models.PaymentAttempt, error) {
	column := "initiated_at"
	if state == models.PaymentStateProcessing {
		column = "dispatched_at"
	}
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts
		WHERE state = $1 AND ` + column + ` < $2
		ORDER BY ` + column + ` ASC`

	var rows []models.PaymentAttempt
	if err := r.db.SelectContext(ctx, &rows, query, state, before); err != nil {
		return nil, fmt.Errorf("failed to list stale payment attempts: %w", err)
	}

	attempts := make([]*models.PaymentAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, &rows[i])
	}
	return attempts, nil
}

func rejectTransition(id string, current models.PaymentState, t models.Transition) error {
	if current.Terminal() {
		return apperrors.InvalidState("payment attempt %s is already %s, no transition to %s allowed", id, current, t.To)
	}
	return apperrors.InvalidState("payment attempt %s is %s, %s requires %s", id, current, t.To, t.From)
}
