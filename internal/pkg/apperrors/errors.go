package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnpayable    = errors.New("listing is not payable")
	ErrRailFailure  = errors.New("payment rail failure")
)

// Validation wraps ErrValidation with the rule that was broken
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with the missing entity and id
func NotFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// InvalidState wraps ErrInvalidState with the blocking invariant
func InvalidState(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Unpayable wraps ErrUnpayable with the listing id
func Unpayable(listingID string) error {
	return fmt.Errorf("%w: no price set on listing %s", ErrUnpayable, listingID)
}

// RailFailure wraps ErrRailFailure with the provider's reason
func RailFailure(reason string) error {
	return fmt.Errorf("%w: %s", ErrRailFailure, reason)
}

// Also tags err with an additional sentinel so errors.Is matches both
func Also(err error, kind error) error {
	if err == nil || errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
