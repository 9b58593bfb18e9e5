package trade

import (
	"context"
	"time"

	"github.com/piresc/tradepost/internal/pkg/models"
)

// TradeUC defines the trade lifecycle operations exposed to handlers
type TradeUC interface {
	CreateListing(ctx context.Context, in models.NewListing) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	Search(ctx context.Context, query string, category models.Category) ([]*models.Listing, error)
	AvailableModals(ctx context.Context, listingID string) (models.ModalList, error)
	Catalog() models.Catalog

	SubmitProof(ctx context.Context, listingID string, screenshots []string, description string) (*models.Proof, error)
	VerifyProof(ctx context.Context, proofID, notes string) (*models.Proof, error)
	GetProof(ctx context.Context, proofID string) (*models.Proof, error)
	CurrentProof(ctx context.Context, listingID string) (*models.Proof, error)
	PendingProofs(ctx context.Context) ([]*models.Proof, error)

	InitiatePayment(ctx context.Context, listingID, payerContact string) (*models.PaymentAttempt, error)
	ConfirmAndPay(ctx context.Context, attemptID string) (*models.PaymentAttempt, error)
	OnRailResult(ctx context.Context, result models.RailResult) (*models.PaymentAttempt, error)
	GetPayment(ctx context.Context, attemptID string) (*models.PaymentAttempt, error)
}

// PaymentSweeper fails payment attempts the rail never answered
type PaymentSweeper interface {
	ExpireStalePayments(ctx context.Context, now time.Time) (int, error)
}
