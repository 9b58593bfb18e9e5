package constants

// Redis key formats
const (
	KeyListingProof    = "listing:proof:%s"    // Format: listing:proof:{listing_id} -> current proof id
	KeyListingInFlight = "listing:inflight:%s" // Format: listing:inflight:{listing_id} -> in-flight attempt id
)
