package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/database"
	"github.com/piresc/tradepost/internal/pkg/models"
)

// releaseScript deletes the claim only when it is still held by ARGV[1].
// Claims are stored as "attempt_id|unix_millis".
var releaseScript = redis.NewScript(`
local held = redis.call("GET", KEYS[1])
if held and (held == ARGV[1] or string.sub(held, 1, #ARGV[1] + 1) == ARGV[1] .. "|") then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LinkRepo keeps the listing links in redis
type LinkRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewLinkRepository creates a redis-backed link repository
func NewLinkRepository(cfg *models.Config, redisClient *database.RedisClient) *LinkRepo {
	return &LinkRepo{cfg: cfg, redisClient: redisClient}
}

// SetCurrentProof points the listing at proofID, replacing any earlier proof
func (r *LinkRepo) SetCurrentProof(ctx context.Context, listingID, proofID string) error {
	key := fmt.Sprintf(constants.KeyListingProof, listingID)
	if err := r.redisClient.Set(ctx, key, proofID, 0); err != nil {
		return fmt.Errorf("failed to set current proof: %w", err)
	}
	return nil
}

func (r *LinkRepo) GetCurrentProof(ctx context.Context, listingID string) (string, error) {
	return r.get(ctx, fmt.Sprintf(constants.KeyListingProof, listingID))
}

// ClaimInFlight uses SETNX so only one attempt can hold a listing
func (r *LinkRepo) ClaimInFlight(ctx context.Context, listingID string, claim models.InFlightClaim) (bool, error) {
	key := fmt.Sprintf(constants.KeyListingInFlight, listingID)
	ok, err := r.redisClient.SetNX(ctx, key, claim.Encode(), 0)
	if err != nil {
		return false, fmt.Errorf("failed to claim in-flight slot: %w", err)
	}
	return ok, nil
}

func (r *LinkRepo) ReleaseInFlight(ctx context.Context, listingID, attemptID string) error {
	key := fmt.Sprintf(constants.KeyListingInFlight, listingID)
	if err := releaseScript.Run(ctx, r.redisClient.GetClient(), []string{key}, attemptID).Err(); err != nil {
		return fmt.Errorf("failed to release in-flight slot: %w", err)
	}
	return nil
}

func (r *LinkRepo) GetInFlight(ctx context.Context, listingID string) (models.InFlightClaim, error) {
	raw, err := r.get(ctx, fmt.Sprintf(constants.KeyListingInFlight, listingID))
	if err != nil || raw == "" {
		return models.InFlightClaim{}, err
	}
	return models.ParseInFlightClaim(raw), nil
}

func (r *LinkRepo) get(ctx context.Context, key string) (string, error) {
	val, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

// MemoryLinkRepo keeps the listing links in process memory
type MemoryLinkRepo struct {
	mu       sync.Mutex
	proofs   map[string]string
	inFlight map[string]models.InFlightClaim
}

// NewMemoryLinkRepository creates an empty in-memory link repository
func NewMemoryLinkRepository() *MemoryLinkRepo {
	return &MemoryLinkRepo{
		proofs:   make(map[string]string),
		inFlight: make(map[string]models.InFlightClaim),
	}
}

func (r *MemoryLinkRepo) SetCurrentProof(_ context.Context, listingID, proofID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proofs[listingID] = proofID
	return nil
}

func (r *MemoryLinkRepo) GetCurrentProof(_ context.Context, listingID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.proofs[listingID], nil
}

func (r *MemoryLinkRepo) ClaimInFlight(_ context.Context, listingID string, claim models.InFlightClaim) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, held := r.inFlight[listingID]; held {
		return false, nil
	}
	r.inFlight[listingID] = claim
	return true, nil
}

func (r *MemoryLinkRepo) ReleaseInFlight(_ context.Context, listingID, attemptID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight[listingID].AttemptID == attemptID {
		delete(r.inFlight, listingID)
	}
	return nil
}

func (r *MemoryLinkRepo) GetInFlight(_ context.Context, listingID string) (models.InFlightClaim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight[listingID], nil
}
