package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/utils"
)

// SubmitProofRequest is the body of POST /listings/:id/proofs
type SubmitProofRequest struct {
	Screenshots []string `json:"screenshots" validate:"min=1,max=10,dive,required,max=2048"`
	Description string   `json:"description" validate:"max=2000"`
}

// VerifyProofRequest is the body of POST /internal/proofs/:id/verify
type VerifyProofRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// SubmitProof handles POST /listings/:id/proofs
func (h *TradeHandler) SubmitProof(c echo.Context) error {
	var req SubmitProofRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	proof, err := h.tradeUC.SubmitProof(c.Request().Context(), c.Param("id"), req.Screenshots, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Proof submitted successfully", proof)
}

// CurrentProof handles GET /listings/:id/proof
func (h *TradeHandler) CurrentProof(c echo.Context) error {
	proof, err := h.tradeUC.CurrentProof(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Proof retrieved successfully", proof)
}

// GetProof handles GET /proofs/:id
func (h *TradeHandler) GetProof(c echo.Context) error {
	proof, err := h.tradeUC.GetProof(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Proof retrieved successfully", proof)
}

// PendingProofs handles GET /internal/proofs/pending
func (h *TradeHandler) PendingProofs(c echo.Context) error {
	proofs, err := h.tradeUC.PendingProofs(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending proofs retrieved successfully", proofs)
}

// VerifyProof handles POST /internal/proofs/:id/verify
func (h *TradeHandler) VerifyProof(c echo.Context) error {
	var req VerifyProofRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	proof, err := h.tradeUC.VerifyProof(c.Request().Context(), c.Param("id"), req.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Proof verified successfully", proof)
}
