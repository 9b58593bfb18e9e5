package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/services/trade/repository"
)

var proofCols = []string{
	"id", "listing_id", "screenshots", "description", "status", "notes", "submitted_at", "verified_at",
}

func TestProofRepo_CreateProof(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProofRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO proofs")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateProof(context.Background(), &models.Proof{
		ID:          "p1",
		ListingID:   "l1",
		Screenshots: []string{"shot.png"},
		Status:      models.ProofStatusPending,
		SubmittedAt: time.Now(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepo_VerifyProof_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProofRepository(&models.Config{}, db)
	at := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE proofs")).
		WithArgs("p1", models.ProofStatusVerified, "looks legit", at, models.ProofStatusPending).
		WillReturnRows(sqlmock.NewRows(proofCols).
			AddRow("p1", "l1", "{a.png}", "", "verified", "looks legit", at.Add(-time.Hour), at))

	proof, err := repo.VerifyProof(context.Background(), "p1", "looks legit", at)

	require.NoError(t, err)
	assert.True(t, proof.Verified())
	assert.Equal(t, "looks legit", proof.Notes)
	require.NotNil(t, proof.VerifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepo_VerifyProof_AlreadyVerified(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProofRepository(&models.Config{}, db)
	at := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE proofs")).
		WillReturnRows(sqlmock.NewRows(proofCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM proofs")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("verified"))

	_, err := repo.VerifyProof(context.Background(), "p1", "again", at)

	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Contains(t, err.Error(), "only pending proofs can be verified")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepo_VerifyProof_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProofRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE proofs")).
		WillReturnRows(sqlmock.NewRows(proofCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM proofs")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	_, err := repo.VerifyProof(context.Background(), "nope", "", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProofRepo_VerifyProof_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProofRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE proofs")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.VerifyProof(context.Background(), "p1", "", time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify proof")
	assert.NotErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestProofRepo_MalformedID(t *testing.T) {
	malformed := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "not-a-uuid"`}

	t.Run("get", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewProofRepository(&models.Config{}, db)
		mock.ExpectQuery(regexp.QuoteMeta("FROM proofs WHERE id = $1")).
			WithArgs("not-a-uuid").
			WillReturnError(malformed)

		_, err := repo.GetProof(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("verify", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewProofRepository(&models.Config{}, db)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE proofs")).
			WillReturnError(malformed)

		_, err := repo.VerifyProof(context.Background(), "not-a-uuid", "", time.Now())

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProofRepo_ListPendingProofs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProofRepository(&models.Config{}, db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 ORDER BY submitted_at ASC")).
		WithArgs(models.ProofStatusPending).
		WillReturnRows(sqlmock.NewRows(proofCols).
			AddRow("p1", "l1", "{a.png,b.png}", "trade log", "pending", "", now, nil))

	proofs, err := repo.ListPendingProofs(context.Background())

	require.NoError(t, err)
	require.Len(t, proofs, 1)
	assert.Equal(t, []string{"a.png", "b.png"}, proofs[0].Screenshots)
	assert.Nil(t, proofs[0].VerifiedAt)
}
