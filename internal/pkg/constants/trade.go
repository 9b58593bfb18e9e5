package constants

import "time"

// Service names used as API key owners
const (
	ServiceModeration  = "moderation-service"
	ServicePaymentRail = "payment-rail"
)

// Failure reasons recorded on payment attempts
const (
	ReasonRailTimeout        = "rail timeout"
	ReasonConfirmExpired     = "confirmation expired"
	ReasonDispatchFailed     = "rail dispatch failed"
	ReasonUnspecifiedFailure = "rail reported failure"
)

// InFlightClaimGrace is how long a claim may name an attempt that is not stored yet
const InFlightClaimGrace = 2 * time.Minute
