package http

import (
	"github.com/piresc/tradepost/services/trade"
)

// TradeHandler handles HTTP requests for listings, proofs and payments
type TradeHandler struct {
	tradeUC trade.TradeUC
}

// NewTradeHandler creates a new trade HTTP handler
func NewTradeHandler(tradeUC trade.TradeUC) *TradeHandler {
	return &TradeHandler{
		tradeUC: tradeUC,
	}
}
