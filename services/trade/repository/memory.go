package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
)

// MemoryListingRepo keeps listings in process memory
type MemoryListingRepo struct {
	mu    sync.RWMutex
	byID  map[string]*models.Listing
	order []string
}

// NewMemoryListingRepository creates an empty in-memory listing repository
func NewMemoryListingRepository() *MemoryListingRepo {
	return &MemoryListingRepo{byID: make(map[string]*models.Listing)}
}

func (r *MemoryListingRepo) CreateListing(_ context.Context, listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[listing.ID]; exists {
		return apperrors.InvalidState("listing %s already exists", listing.ID)
	}
	r.byID[listing.ID] = cloneListing(listing)
	r.order = append(r.order, listing.ID)
	return nil
}

func (r *MemoryListingRepo) GetListing(_ context.Context, id string) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("listing", id)
	}
	return cloneListing(listing), nil
}

// ListListings returns listings by creation time, newest first. Listings
// created at the same instant come back in reverse insertion order.
func (r *MemoryListingRepo) ListListings(_ context.Context) ([]*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Listing, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, cloneListing(r.byID[r.order[i]]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryListingRepo) MarkPaymentCompleted(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.byID[id]
	if !ok {
		return apperrors.NotFound("listing", id)
	}
	listing.PaymentCompleted = true
	return nil
}

func cloneListing(l *models.Listing) *models.Listing {
	c := *l
	c.Tags = append([]string{}, l.Tags...)
	return &c
}

// MemoryProofRepo keeps proof submissions in process memory
type MemoryProofRepo struct {
	mu    sync.RWMutex
	byID  map[string]*models.Proof
	order []string
}

// NewMemoryProofRepository creates an empty in-memory proof repository
func NewMemoryProofRepository() *MemoryProofRepo {
	return &MemoryProofRepo{byID: make(map[string]*models.Proof)}
}

func (r *MemoryProofRepo) CreateProof(_ context.Context, proof *models.Proof) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[proof.ID]; exists {
		return apperrors.InvalidState("proof %s already exists", proof.ID)
	}
	r.byID[proof.ID] = cloneProof(proof)
	r.order = append(r.order, proof.ID)
	return nil
}

func (r *MemoryProofRepo) GetProof(_ context.Context, id string) (*models.Proof, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proof, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("proof", id)
	}
	return cloneProof(proof), nil
}

func (r *MemoryProofRepo) VerifyProof(_ context.Context, id, notes string, at time.Time) (*models.Proof, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	proof, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("proof", id)
	}
	if proof.Status != models.ProofStatusPending {
		return nil, apperrors.InvalidState("proof %s is %s, only pending proofs can be verified", id, proof.Status)
	}
	proof.Status = models.ProofStatusVerified
	proof.Notes = notes
	proof.VerifiedAt = &at
	return cloneProof(proof), nil
}

func (r *MemoryProofRepo) ListPendingProofs(_ context.Context) ([]*models.Proof, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Proof, 0)
	for _, id := range r.order {
		if proof := r.byID[id]; proof.Status == models.ProofStatusPending {
			out = append(out, cloneProof(proof))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

func cloneProof(p *models.Proof) *models.Proof {
	c := *p
	c.Screenshots = append([]string{}, p.Screenshots...)
	if p.VerifiedAt != nil {
		at := *p.VerifiedAt
		c.VerifiedAt = &at
	}
	return &c
}

// MemoryPaymentRepo keeps payment attempts in process memory. Like the
// postgres index, it refuses a second in-flight attempt for a listing.
type MemoryPaymentRepo struct {
	mu   sync.RWMutex
	byID map[string]*models.PaymentAttempt
}

// NewMemoryPaymentRepository creates an empty in-memory payment repository
func NewMemoryPaymentRepository() *MemoryPaymentRepo {
	return &MemoryPaymentRepo{byID: make(map[string]*models.PaymentAttempt)}
}

func (r *MemoryPaymentRepo) CreateAttempt(_ context.Context, attempt *models.PaymentAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[attempt.ID]; exists {
		return apperrors.InvalidState("payment attempt %s already exists", attempt.ID)
	}
	for _, existing := range r.byID {
		if existing.ListingID == attempt.ListingID && existing.State.InFlight() {
			return apperrors.InvalidState("listing %s already has a payment attempt in flight", attempt.ListingID)
		}
	}
	r.byID[attempt.ID] = cloneAttempt(attempt)
	return nil
}

func (r *MemoryPaymentRepo) GetAttempt(_ context.Context, id string) (*models.PaymentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempt, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("payment attempt", id)
	}
	return cloneAttempt(attempt), nil
}

func (r *MemoryPaymentRepo) TransitionAttempt(_ context.Context, id string, t models.Transition) (*models.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempt, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("payment attempt", id)
	}
	if attempt.State != t.From {
		return nil, rejectTransition(id, attempt.State, t)
	}
	attempt.Apply(t)
	return cloneAttempt(attempt), nil
}

func (r *MemoryPaymentRepo) ListStaleAttempts(_ context.Context, state models.PaymentState, before time.Time) ([]*models.PaymentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.PaymentAttempt, 0)
	for _, attempt := range r.byID {
		if attempt.State != state {
			continue
		}
		if lastTransition(attempt).Before(before) {
			out = append(out, cloneAttempt(attempt))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return lastTransition(out[i]).Before(lastTransition(out[j]))
	})
	return out, nil
}

func lastTransition(a *models.PaymentAttempt) time.Time {
	if a.State == models.PaymentStateProcessing && a.DispatchedAt != nil {
		return *a.DispatchedAt
	}
	return a.InitiatedAt
}

func cloneAttempt(a *models.PaymentAttempt) *models.PaymentAttempt {
	c := *a
	if a.DispatchedAt != nil {
		at := *a.DispatchedAt
		c.DispatchedAt = &at
	}
	if a.ResolvedAt != nil {
		at := *a.ResolvedAt
		c.ResolvedAt = &at
	}
	return &c
}
