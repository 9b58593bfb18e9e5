package repository

import "github.com/piresc/tradepost/services/trade"

var (
	_ trade.ListingRepo = (*ListingRepo)(nil)
	_ trade.ProofRepo   = (*ProofRepo)(nil)
	_ trade.PaymentRepo = (*PaymentRepo)(nil)
	_ trade.LinkRepo    = (*LinkRepo)(nil)

	_ trade.ListingRepo = (*MemoryListingRepo)(nil)
	_ trade.ProofRepo   = (*MemoryProofRepo)(nil)
	_ trade.PaymentRepo = (*MemoryPaymentRepo)(nil)
	_ trade.LinkRepo    = (*MemoryLinkRepo)(nil)
)
