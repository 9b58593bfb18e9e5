package models

import (
	"time"

	"github.com/lib/pq"
)

// ProofStatus is the verification status of a proof submission
type ProofStatus string

const (
	ProofStatusPending  ProofStatus = "pending"
	ProofStatusVerified ProofStatus = "verified"
)

// Proof is evidence attached to a listing to back its legitimacy
type Proof struct {
	ID          string      `json:"id"`
	ListingID   string      `json:"listing_id"`
	Screenshots []string    `json:"screenshots"`
	Description string      `json:"description"`
	Status      ProofStatus `json:"status"`
	Notes       string      `json:"verification_notes,omitempty"`
	SubmittedAt time.Time   `json:"submitted_at"`
	VerifiedAt  *time.Time  `json:"verified_at,omitempty"`
}

// Verified reports whether a moderator has accepted the proof
func (p *Proof) Verified() bool {
	return p.Status == ProofStatusVerified
}

// ProofDTO is the row shape of the proofs table
type ProofDTO struct {
	ID          string         `db:"id"`
	ListingID   string         `db:"listing_id"`
	Screenshots pq.StringArray `db:"screenshots"`
	Description string         `db:"description"`
	Status      ProofStatus    `db:"status"`
	Notes       string         `db:"notes"`
	SubmittedAt time.Time      `db:"submitted_at"`
	VerifiedAt  *time.Time     `db:"verified_at"`
}

// ToDTO converts a Proof to its row shape
func (p *Proof) ToDTO() *ProofDTO {
	return &ProofDTO{
		ID:          p.ID,
		ListingID:   p.ListingID,
		Screenshots: pq.StringArray(p.Screenshots),
		Description: p.Description,
		Status:      p.Status,
		Notes:       p.Notes,
		SubmittedAt: p.SubmittedAt,
		VerifiedAt:  p.VerifiedAt,
	}
}

// ToProof converts a row back to a Proof
func (dto *ProofDTO) ToProof() *Proof {
	return &Proof{
		ID:          dto.ID,
		ListingID:   dto.ListingID,
		Screenshots: []string(dto.Screenshots),
		Description: dto.Description,
		Status:      dto.Status,
		Notes:       dto.Notes,
		SubmittedAt: dto.SubmittedAt,
		VerifiedAt:  dto.VerifiedAt,
	}
}
