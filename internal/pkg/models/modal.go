package models

import (
	"encoding/json"
	"fmt"
)

// ModalKind names a variant of ModalState
type ModalKind string

const (
	ModalClosed          ModalKind = "closed"
	ModalViewingProof    ModalKind = "viewing_proof"
	ModalSubmittingProof ModalKind = "submitting_proof"
	ModalPayingFor       ModalKind = "paying_for"
)

// ModalState is the dialog a listing browser has open. The set of
// variants is closed: Closed, ViewingProof, SubmittingProof, PayingFor.
type ModalState interface {
	Kind() ModalKind
	Listing() string
	modal()
}

type Closed struct{}

type ViewingProof struct{ ListingID string }

type SubmittingProof struct{ ListingID string }

type PayingFor struct{ ListingID string }

func (Closed) Kind() ModalKind          { return ModalClosed }
func (ViewingProof) Kind() ModalKind    { return ModalViewingProof }
func (SubmittingProof) Kind() ModalKind { return ModalSubmittingProof }
func (PayingFor) Kind() ModalKind       { return ModalPayingFor }

func (Closed) Listing() string            { return "" }
func (m ViewingProof) Listing() string    { return m.ListingID }
func (m SubmittingProof) Listing() string { return m.ListingID }
func (m PayingFor) Listing() string       { return m.ListingID }

func (Closed) modal()          {}
func (ViewingProof) modal()    {}
func (SubmittingProof) modal() {}
func (PayingFor) modal()       {}

type modalJSON struct {
	Kind      ModalKind `json:"kind"`
	ListingID string    `json:"listing_id,omitempty"`
}

// MarshalModal encodes a modal state as {kind, listing_id}
func MarshalModal(m ModalState) ([]byte, error) {
	if m == nil {
		m = Closed{}
	}
	return json.Marshal(modalJSON{Kind: m.Kind(), ListingID: m.Listing()})
}

// UnmarshalModal decodes {kind, listing_id} back into a variant
func UnmarshalModal(data []byte) (ModalState, error) {
	var raw modalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode modal state: %w", err)
	}
	return NewModal(raw.Kind, raw.ListingID)
}

// NewModal builds the variant for kind. Every kind except closed needs a listing.
func NewModal(kind ModalKind, listingID string) (ModalState, error) {
	if kind == ModalClosed {
		return Closed{}, nil
	}
	if listingID == "" {
		return nil, fmt.Errorf("modal %s requires a listing id", kind)
	}
	switch kind {
	case ModalViewingProof:
		return ViewingProof{ListingID: listingID}, nil
	case ModalSubmittingProof:
		return SubmittingProof{ListingID: listingID}, nil
	case ModalPayingFor:
		return PayingFor{ListingID: listingID}, nil
	}
	return nil, fmt.Errorf("unknown modal kind %q", kind)
}

// ModalList is a JSON-friendly slice of modal states
type ModalList []ModalState

// MarshalJSON encodes each variant as {kind, listing_id}
func (l ModalList) MarshalJSON() ([]byte, error) {
	out := make([]modalJSON, 0, len(l))
	for _, m := range l {
		out = append(out, modalJSON{Kind: m.Kind(), ListingID: m.Listing()})
	}
	return json.Marshal(out)
}
