package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInFlightClaim_Encode(t *testing.T) {
	claim := InFlightClaim{AttemptID: "a1", ClaimedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}

	assert.Equal(t, "a1|1777636800000", claim.Encode())
	assert.Equal(t, claim, ParseInFlightClaim(claim.Encode()))
}

func TestParseInFlightClaim(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected InFlightClaim
	}{
		{"encoded", "a1|1777636800000", InFlightClaim{AttemptID: "a1", ClaimedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}},
		{"bare id", "a1", InFlightClaim{AttemptID: "a1"}},
		{"bad millis", "a1|soon", InFlightClaim{AttemptID: "a1"}},
		{"empty", "", InFlightClaim{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := ParseInFlightClaim(tt.raw)

			assert.Equal(t, tt.expected, claim)
			assert.Equal(t, tt.raw != "", claim.Held())
		})
	}
}
