package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/models"
)

func createListing(t *testing.T, env *testEnv, price string) *models.Listing {
	t.Helper()
	listing, err := env.svc.CreateListing(context.Background(), pricedListing(price))
	require.NoError(t, err)
	return listing
}

func TestInitiatePayment_Unpayable(t *testing.T) {
	for _, price := range []string{"", "   "} {
		env := newTestEnv(t)
		listing := createListing(t, env, price)

		attempt, err := env.svc.InitiatePayment(context.Background(), listing.ID, "buyer@example.com")

		assert.Nil(t, attempt)
		assert.ErrorIs(t, err, apperrors.ErrUnpayable)
	}
}

func TestInitiatePayment_UnknownListing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.InitiatePayment(context.Background(), "missing", "buyer@example.com")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInitiatePayment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		contact string
	}{
		{"invalid contact", "$35", "not-an-address"},
		{"empty contact", "$35", ""},
		{"price without digits", "make an offer", "buyer@example.com"},
		{"zero price", "$0", "buyer@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			listing := createListing(t, env, tt.price)

			_, err := env.svc.InitiatePayment(context.Background(), listing.ID, tt.contact)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			holder, err := env.links.GetInFlight(context.Background(), listing.ID)
			require.NoError(t, err)
			assert.False(t, holder.Held(), "a rejected initiate must not hold the slot")
		})
	}
}

func TestInitiatePayment_NormalizesAmount(t *testing.T) {
	env := newTestEnv(t)
	listing := createListing(t, env, "$15 each")

	attempt, err := env.svc.InitiatePayment(context.Background(), listing.ID, " buyer@example.com ")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStateConfirm, attempt.State)
	assert.True(t, decimal.NewFromInt(15).Equal(attempt.Amount))
	assert.Equal(t, "$15 each", attempt.AmountRaw)
	assert.Equal(t, "buyer@example.com", attempt.PayerContact)
	assert.Equal(t, env.clock.Now(), attempt.InitiatedAt)
}

func TestInitiatePayment_OneInFlightPerListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	other := createListing(t, env, "$10")

	_, err := env.svc.InitiatePayment(ctx, listing.ID, "a@example.com")
	require.NoError(t, err)

	_, err = env.svc.InitiatePayment(ctx, listing.ID, "b@example.com")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Contains(t, err.Error(), "in flight")

	_, err = env.svc.InitiatePayment(ctx, other.ID, "b@example.com")
	assert.NoError(t, err, "listings do not block each other")
}

func TestInitiatePayment_ConcurrentCallsSucceedOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")

	const callers = 40
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if errors.Is(err, apperrors.ErrInvalidState) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)
}

func TestPayment_EndToEnd(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")

	env.rail.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.RailDispatch) error {
			assert.Equal(t, listing.ID, d.ListingID)
			assert.True(t, decimal.NewFromInt(35).Equal(d.Amount))
			assert.Equal(t, "buyer@example.com", d.PayerContact)
			return nil
		})

	// Act
	attempt, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
	require.NoError(t, err)

	env.clock.Advance(time.Second)
	processing, err := env.svc.ConfirmAndPay(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStateProcessing, processing.State)
	require.NotNil(t, processing.DispatchedAt)

	env.clock.Advance(time.Second)
	complete, err := env.svc.OnRailResult(ctx, models.RailResult{AttemptID: attempt.ID, Outcome: models.RailOutcomeSuccess})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, models.PaymentStateComplete, complete.State)
	require.NotNil(t, complete.ResolvedAt)
	assert.Equal(t, env.clock.Now(), *complete.ResolvedAt)

	paid, err := env.svc.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.True(t, paid.PaymentCompleted)
	assert.Equal(t, "$35", paid.Price, "price is never mutated")

	_, err = env.svc.ConfirmAndPay(ctx, attempt.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = env.svc.OnRailResult(ctx, models.RailResult{AttemptID: attempt.ID, Outcome: models.RailOutcomeFailure})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	again, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
	require.NoError(t, err, "a finished attempt frees the listing")
	assert.NotEqual(t, attempt.ID, again.ID)
}

func TestConfirmAndPay_DispatchFailure(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	attempt, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
	require.NoError(t, err)

	env.rail.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("circuit breaker is open"))

	// Act
	failed, err := env.svc.ConfirmAndPay(ctx, attempt.ID)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrRailFailure)
	require.NotNil(t, failed)
	assert.Equal(t, models.PaymentStateFailed, failed.State)
	assert.Equal(t, constants.ReasonDispatchFailed, failed.FailureReason)

	stored, err := env.svc.GetPayment(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStateFailed, stored.State)

	_, err = env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
	assert.NoError(t, err, "a failed dispatch releases the listing")
}

func TestOnRailResult_Failure(t *testing.T) {
	tests := []struct {
		name     string
		reason   string
		expected string
	}{
		{"provider reason", "card declined", "card declined"},
		{"no reason", "", constants.ReasonUnspecifiedFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			listing := createListing(t, env, "$35")
			attempt, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
			require.NoError(t, err)
			env.rail.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
			_, err = env.svc.ConfirmAndPay(ctx, attempt.ID)
			require.NoError(t, err)

			failed, err := env.svc.OnRailResult(ctx, models.RailResult{
				AttemptID: attempt.ID,
				Outcome:   models.RailOutcomeFailure,
				Reason:    tt.reason,
			})

			require.NoError(t, err)
			assert.Equal(t, models.PaymentStateFailed, failed.State)
			assert.Equal(t, tt.expected, failed.FailureReason)

			got, err := env.svc.GetListing(ctx, listing.ID)
			require.NoError(t, err)
			assert.False(t, got.PaymentCompleted)
		})
	}
}

func TestOnRailResult_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	attempt, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")
	require.NoError(t, err)

	_, err = env.svc.OnRailResult(ctx, models.RailResult{AttemptID: attempt.ID, Outcome: models.RailOutcomeSuccess})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState, "an attempt still in confirm was never dispatched")

	_, err = env.svc.OnRailResult(ctx, models.RailResult{AttemptID: attempt.ID, Outcome: "pending"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = env.svc.OnRailResult(ctx, models.RailResult{Outcome: models.RailOutcomeSuccess})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = env.svc.OnRailResult(ctx, models.RailResult{AttemptID: "ghost", Outcome: models.RailOutcomeSuccess})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExpireStalePayments(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	abandoned := createListing(t, env, "$35")
	lost := createListing(t, env, "$10")
	fresh := createListing(t, env, "$5")

	abandonedAttempt, err := env.svc.InitiatePayment(ctx, abandoned.ID, "a@example.com")
	require.NoError(t, err)
	lostAttempt, err := env.svc.InitiatePayment(ctx, lost.ID, "b@example.com")
	require.NoError(t, err)
	env.rail.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	_, err = env.svc.ConfirmAndPay(ctx, lostAttempt.ID)
	require.NoError(t, err)

	env.clock.Advance(45 * time.Minute)
	_, err = env.svc.InitiatePayment(ctx, fresh.ID, "c@example.com")
	require.NoError(t, err)

	// Act
	expired, err := env.svc.ExpireStalePayments(ctx, env.clock.Now())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, expired)

	got, err := env.svc.GetPayment(ctx, abandonedAttempt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStateFailed, got.State)
	assert.Equal(t, constants.ReasonConfirmExpired, got.FailureReason)

	got, err = env.svc.GetPayment(ctx, lostAttempt.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ReasonRailTimeout, got.FailureReason)

	_, err = env.svc.OnRailResult(ctx, models.RailResult{AttemptID: lostAttempt.ID, Outcome: models.RailOutcomeSuccess})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState, "a late result cannot revive an expired attempt")

	_, err = env.svc.InitiatePayment(ctx, abandoned.ID, "a@example.com")
	assert.NoError(t, err)
}

func TestInitiatePayment_ReclaimsStaleSlot(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	ended := &models.PaymentAttempt{
		ID:            "ended-attempt",
		ListingID:     listing.ID,
		PayerContact:  "old@example.com",
		AmountRaw:     "$35",
		Amount:        decimal.NewFromInt(35),
		State:         models.PaymentStateFailed,
		FailureReason: constants.ReasonRailTimeout,
		InitiatedAt:   env.clock.Now(),
	}
	require.NoError(t, env.payments.CreateAttempt(ctx, ended))
	ok, err := env.links.ClaimInFlight(ctx, listing.ID, models.InFlightClaim{AttemptID: ended.ID, ClaimedAt: env.clock.Now()})
	require.NoError(t, err)
	require.True(t, ok)

	// Act
	attempt, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")

	// Assert
	require.NoError(t, err)
	holder, err := env.links.GetInFlight(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.ID, holder.AttemptID)
}

func TestInitiatePayment_UnstoredHolderBlocks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	claim := models.InFlightClaim{AttemptID: "mid-initiate", ClaimedAt: env.clock.Now()}
	ok, err := env.links.ClaimInFlight(ctx, listing.ID, claim)
	require.NoError(t, err)
	require.True(t, ok)
	env.clock.Advance(constants.InFlightClaimGrace - time.Second)

	_, err = env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")

	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestInitiatePayment_ReclaimsAbandonedClaim(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	claim := models.InFlightClaim{AttemptID: "ghost-attempt", ClaimedAt: env.clock.Now()}
	ok, err := env.links.ClaimInFlight(ctx, listing.ID, claim)
	require.NoError(t, err)
	require.True(t, ok)
	env.clock.Advance(30 * 24 * time.Hour)

	expired, err := env.svc.ExpireStalePayments(ctx, env.clock.Now())
	require.NoError(t, err)
	require.Zero(t, expired, "an unstored claim has no attempt to expire")

	// Act
	attempt, err := env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")

	// Assert
	require.NoError(t, err)
	holder, err := env.links.GetInFlight(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.ID, holder.AttemptID)
	assert.Equal(t, env.clock.Now().UTC(), holder.ClaimedAt)
}

func TestInitiatePayment_LegacyClaimWithoutTimestamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := createListing(t, env, "$35")
	_, err := env.links.ClaimInFlight(ctx, listing.ID, models.ParseInFlightClaim("bare-attempt"))
	require.NoError(t, err)

	_, err = env.svc.InitiatePayment(ctx, listing.ID, "buyer@example.com")

	assert.NoError(t, err)
}

func TestInitiatePayment_StoreFailureReleasesSlot(t *testing.T) {
	// Arrange
	svc, listingRepo, _, paymentRepo, linkRepo, _ := newMockedService(t)
	ctx := context.Background()
	listing := &models.Listing{ID: "l1", Price: "$35"}

	listingRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(listing, nil).Times(2)
	linkRepo.EXPECT().ClaimInFlight(gomock.Any(), "l1", gomock.Any()).Return(true, nil)
	paymentRepo.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	linkRepo.EXPECT().ReleaseInFlight(gomock.Any(), "l1", gomock.Any()).Return(nil)

	// Act
	attempt, err := svc.InitiatePayment(ctx, "l1", "buyer@example.com")

	// Assert
	assert.Nil(t, attempt)
	assert.EqualError(t, err, "disk full")
}

func TestConfirmAndPay_UnknownAttempt(t *testing.T) {
	svc, _, _, paymentRepo, _, _ := newMockedService(t)

	paymentRepo.EXPECT().
		TransitionAttempt(gomock.Any(), "ghost", gomock.Any()).
		Return(nil, apperrors.NotFound("payment attempt", "ghost"))

	_, err := svc.ConfirmAndPay(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOnRailResult_AnnotatesBeforeReleasingSlot(t *testing.T) {
	// Arrange
	svc, listingRepo, _, paymentRepo, linkRepo, _ := newMockedService(t)
	ctx := context.Background()
	complete := &models.PaymentAttempt{ID: "a1", ListingID: "l1", State: models.PaymentStateComplete}

	paymentRepo.EXPECT().TransitionAttempt(gomock.Any(), "a1", gomock.Any()).Return(complete, nil)
	gomock.InOrder(
		listingRepo.EXPECT().MarkPaymentCompleted(gomock.Any(), "l1").Return(errors.New("connection reset")),
		listingRepo.EXPECT().MarkPaymentCompleted(gomock.Any(), "l1").Return(nil),
		linkRepo.EXPECT().ReleaseInFlight(gomock.Any(), "l1", "a1").Return(nil),
	)

	// Act
	attempt, err := svc.OnRailResult(ctx, models.RailResult{AttemptID: "a1", Outcome: models.RailOutcomeSuccess})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStateComplete, attempt.State)
}

func TestOnRailResult_AnnotateFailureStillReleasesSlot(t *testing.T) {
	// Arrange
	svc, listingRepo, _, paymentRepo, linkRepo, _ := newMockedService(t)
	ctx := context.Background()
	complete := &models.PaymentAttempt{ID: "a1", ListingID: "l1", State: models.PaymentStateComplete}

	paymentRepo.EXPECT().TransitionAttempt(gomock.Any(), "a1", gomock.Any()).Return(complete, nil)
	listingRepo.EXPECT().MarkPaymentCompleted(gomock.Any(), "l1").Return(errors.New("connection reset")).Times(3)
	linkRepo.EXPECT().ReleaseInFlight(gomock.Any(), "l1", "a1").Return(nil)

	// Act
	attempt, err := svc.OnRailResult(ctx, models.RailResult{AttemptID: "a1", Outcome: models.RailOutcomeSuccess})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to annotate listing l1 as paid")
	assert.Equal(t, models.PaymentStateComplete, attempt.State)
}

func TestOnRailResult_FailureSkipsAnnotation(t *testing.T) {
	svc, _, _, paymentRepo, linkRepo, _ := newMockedService(t)
	failed := &models.PaymentAttempt{ID: "a1", ListingID: "l1", State: models.PaymentStateFailed}

	paymentRepo.EXPECT().TransitionAttempt(gomock.Any(), "a1", gomock.Any()).Return(failed, nil)
	linkRepo.EXPECT().ReleaseInFlight(gomock.Any(), "l1", "a1").Return(nil)

	_, err := svc.OnRailResult(context.Background(), models.RailResult{AttemptID: "a1", Outcome: models.RailOutcomeFailure, Reason: "declined"})

	assert.NoError(t, err)
}
