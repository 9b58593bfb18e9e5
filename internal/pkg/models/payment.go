package models

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
)

// PaymentState is the execution state of a payment attempt
type PaymentState string

const (
	PaymentStateConfirm    PaymentState = "confirm"
	PaymentStateProcessing PaymentState = "processing"
	PaymentStateComplete   PaymentState = "complete"
	PaymentStateFailed     PaymentState = "failed"
)

// Terminal reports whether no further transition is allowed
func (s PaymentState) Terminal() bool {
	return s == PaymentStateComplete || s == PaymentStateFailed
}

// InFlight reports whether the attempt still holds its listing's payment slot
func (s PaymentState) InFlight() bool {
	return s == PaymentStateConfirm || s == PaymentStateProcessing
}

// PaymentAttempt is one run of the payment rail for a listing's price
type PaymentAttempt struct {
	ID            string          `json:"id" db:"id"`
	ListingID     string          `json:"listing_id" db:"listing_id"`
	PayerContact  string          `json:"payer_contact" db:"payer_contact"`
	AmountRaw     string          `json:"amount_raw" db:"amount_raw"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	State         PaymentState    `json:"state" db:"state"`
	FailureReason string          `json:"failure_reason,omitempty" db:"failure_reason"`
	InitiatedAt   time.Time       `json:"initiated_at" db:"initiated_at"`
	DispatchedAt  *time.Time      `json:"dispatched_at,omitempty" db:"dispatched_at"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty" db:"resolved_at"`
}

// Transition describes a compare-and-swap on an attempt's state
type Transition struct {
	From   PaymentState
	To     PaymentState
	At     time.Time
	Reason string
}

// Apply moves the attempt to t.To and stamps the matching timestamp
func (a *PaymentAttempt) Apply(t Transition) {
	a.State = t.To
	at := t.At
	switch t.To {
	case PaymentStateProcessing:
		a.DispatchedAt = &at
	case PaymentStateComplete:
		a.ResolvedAt = &at
	case PaymentStateFailed:
		a.ResolvedAt = &at
		a.FailureReason = t.Reason
	}
}

var nonAmountChars = regexp.MustCompile(`[^0-9.]`)

// NormalizeAmount strips everything but digits and dots from a price string
// and parses the rest. The raw price is never modified.
func NormalizeAmount(raw string) (decimal.Decimal, error) {
	digits := nonAmountChars.ReplaceAllString(raw, "")
	if digits == "" {
		return decimal.Zero, apperrors.Validation("price %q has no numeric amount", raw)
	}
	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, apperrors.Validation("price %q is not a valid amount", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.Validation("price %q must be greater than zero", raw)
	}
	return amount, nil
}
