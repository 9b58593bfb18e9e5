package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/utils"
)

// InitiatePaymentRequest is the body of POST /listings/:id/payments
type InitiatePaymentRequest struct {
	PayerContact string `json:"payer_contact" validate:"required,max=254"`
}

// RailResultRequest is the body of the payment rail webhook
type RailResultRequest struct {
	Outcome   models.RailOutcome `json:"outcome" validate:"required,oneof=success failure"`
	Reason    string             `json:"reason" validate:"max=500"`
	SettledAt time.Time          `json:"settled_at"`
}

// InitiatePayment handles POST /listings/:id/payments
func (h *TradeHandler) InitiatePayment(c echo.Context) error {
	var req InitiatePaymentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	attempt, err := h.tradeUC.InitiatePayment(c.Request().Context(), c.Param("id"), req.PayerContact)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment attempt created", attempt)
}

// ConfirmAndPay handles POST /payments/:id/confirm. The rail answers
// asynchronously, so success is 202 with the attempt in processing.
func (h *TradeHandler) ConfirmAndPay(c echo.Context) error {
	attempt, err := h.tradeUC.ConfirmAndPay(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrRailFailure) && attempt != nil {
			return c.JSON(http.StatusBadGateway, utils.Response{
				Success: false,
				Error:   err.Error(),
				Data:    attempt,
			})
		}
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Payment dispatched to the rail", attempt)
}

// GetPayment handles GET /payments/:id
func (h *TradeHandler) GetPayment(c echo.Context) error {
	attempt, err := h.tradeUC.GetPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment attempt retrieved successfully", attempt)
}

// RailResult handles POST /internal/payments/:id/rail-result
func (h *TradeHandler) RailResult(c echo.Context) error {
	var req RailResultRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	attempt, err := h.tradeUC.OnRailResult(c.Request().Context(), models.RailResult{
		AttemptID: c.Param("id"),
		Outcome:   req.Outcome,
		Reason:    req.Reason,
		SettledAt: req.SettledAt,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rail result applied", attempt)
}
