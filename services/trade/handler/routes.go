package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/middleware"
	"github.com/piresc/tradepost/internal/pkg/models"
	natspkg "github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/services/trade"
	httpHandler "github.com/piresc/tradepost/services/trade/handler/http"
	natsHandler "github.com/piresc/tradepost/services/trade/handler/nats"
)

// Handler combines all handlers for the trade service
type Handler struct {
	cfg       *models.Config
	tradeHTTP *httpHandler.TradeHandler
	railNATS  *natsHandler.RailHandler
}

// NewHandler creates a new combined handler. natsClient may be nil when the
// rail answers over HTTP only.
func NewHandler(cfg *models.Config, tradeUC trade.TradeUC, natsClient *natspkg.Client) *Handler {
	h := &Handler{
		cfg:       cfg,
		tradeHTTP: httpHandler.NewTradeHandler(tradeUC),
	}
	if natsClient != nil {
		h.railNATS = natsHandler.NewRailHandler(tradeUC, natsClient)
	}
	return h
}

// RegisterRoutes registers all HTTP routes. Writes are rate limited when a
// redis client is given.
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *redis.Client) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	writes := []echo.MiddlewareFunc{auth}
	if redisClient != nil {
		writes = append(writes, middleware.WriteRateLimiter(h.cfg.Limits.Writes, h.cfg.Limits.Period, redisClient))
	}

	api := e.Group("/api/v1")

	api.GET("/catalog", h.tradeHTTP.Catalog)

	listings := api.Group("/listings")
	listings.GET("", h.tradeHTTP.SearchListings)
	listings.GET("/:id", h.tradeHTTP.GetListing)
	listings.GET("/:id/actions", h.tradeHTTP.ListingActions)
	listings.GET("/:id/proof", h.tradeHTTP.CurrentProof)
	listings.POST("", h.tradeHTTP.CreateListing, writes...)
	listings.POST("/:id/proofs", h.tradeHTTP.SubmitProof, writes...)
	listings.POST("/:id/payments", h.tradeHTTP.InitiatePayment, writes...)

	api.GET("/proofs/:id", h.tradeHTTP.GetProof)

	payments := api.Group("/payments")
	payments.GET("/:id", h.tradeHTTP.GetPayment)
	payments.POST("/:id/confirm", h.tradeHTTP.ConfirmAndPay, writes...)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal")
	moderation := internal.Group("/proofs", middleware.ValidateAPIKey(constants.ServiceModeration))
	moderation.GET("/pending", h.tradeHTTP.PendingProofs)
	moderation.POST("/:id/verify", h.tradeHTTP.VerifyProof)

	rail := internal.Group("/payments", middleware.ValidateAPIKey(constants.ServicePaymentRail))
	rail.POST("/:id/rail-result", h.tradeHTTP.RailResult)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	if h.railNATS == nil {
		return nil
	}
	return h.railNATS.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() error {
	if h.railNATS == nil {
		return nil
	}
	return h.railNATS.Close()
}
