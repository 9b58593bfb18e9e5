package railsandbox

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/middleware"
	"github.com/piresc/tradepost/internal/pkg/models"
	natspkg "github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/internal/utils"
)

// Handler exposes the sandbox rail over NATS and HTTP
type Handler struct {
	rail       *Rail
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewHandler creates a sandbox handler
func NewHandler(rail *Rail, natsClient *natspkg.Client) *Handler {
	return &Handler{rail: rail, natsClient: natsClient}
}

// InitNATSConsumers joins the sandbox queue group on the dispatch subject
func (h *Handler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectRailDispatch, constants.QueueRailSandbox, h.rail.HandleDispatch)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}

// RegisterRoutes mounts the webhook used by the HTTP rail transport
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/dispatch", h.Dispatch, middleware.ValidateAPIKey(constants.ServicePaymentRail))
}

// Dispatch accepts a rail request posted over HTTP
func (h *Handler) Dispatch(c echo.Context) error {
	var d models.RailDispatch
	if err := c.Bind(&d); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.rail.Accept(c.Request().Context(), d); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.ServiceUnavailableResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Dispatch accepted", map[string]string{"attempt_id": d.AttemptID})
}

// Close drops the NATS subscriptions
func (h *Handler) Close() error {
	var errs []error
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			errs = append(errs, err)
		}
	}
	h.subs = nil
	return errors.Join(errs...)
}
