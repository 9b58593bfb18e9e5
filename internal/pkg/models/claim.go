package models

import (
	"strconv"
	"strings"
	"time"
)

// InFlightClaim records which attempt holds a listing's payment slot and since when
type InFlightClaim struct {
	AttemptID string
	ClaimedAt time.Time
}

// Held reports whether the claim names an attempt
func (c InFlightClaim) Held() bool {
	return c.AttemptID != ""
}

// Encode renders the claim as "attempt_id|unix_millis"
func (c InFlightClaim) Encode() string {
	return c.AttemptID + "|" + strconv.FormatInt(c.ClaimedAt.UnixMilli(), 10)
}

// ParseInFlightClaim reads an encoded claim. A bare attempt id parses with a
// zero ClaimedAt.
func ParseInFlightClaim(raw string) InFlightClaim {
	id, millis, found := strings.Cut(raw, "|")
	if !found {
		return InFlightClaim{AttemptID: raw}
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return InFlightClaim{AttemptID: id}
	}
	return InFlightClaim{AttemptID: id, ClaimedAt: time.UnixMilli(ms).UTC()}
}
