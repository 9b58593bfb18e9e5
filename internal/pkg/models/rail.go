package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RailOutcome is the result a payment rail reports for a dispatch
type RailOutcome string

const (
	RailOutcomeSuccess RailOutcome = "success"
	RailOutcomeFailure RailOutcome = "failure"
)

// RailDispatch asks the payment rail to move money for an attempt
type RailDispatch struct {
	AttemptID    string          `json:"attempt_id"`
	ListingID    string          `json:"listing_id"`
	PayerContact string          `json:"payer_contact"`
	Amount       decimal.Decimal `json:"amount"`
	AmountRaw    string          `json:"amount_raw"`
	DispatchedAt time.Time       `json:"dispatched_at"`
}

// RailResult is the single asynchronous answer to a RailDispatch
type RailResult struct {
	AttemptID string      `json:"attempt_id"`
	Outcome   RailOutcome `json:"outcome"`
	Reason    string      `json:"reason,omitempty"`
	SettledAt time.Time   `json:"settled_at"`
}

// DispatchFor builds the rail request for an attempt
func DispatchFor(a *PaymentAttempt, at time.Time) RailDispatch {
	return RailDispatch{
		AttemptID:    a.ID,
		ListingID:    a.ListingID,
		PayerContact: a.PayerContact,
		Amount:       a.Amount,
		AmountRaw:    a.AmountRaw,
		DispatchedAt: at,
	}
}
