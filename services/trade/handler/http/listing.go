package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/middleware"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/utils"
)

// CreateListingRequest is the body of POST /listings. The author and flair
// come from the caller's token.
type CreateListingRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Category    models.Category `json:"category" validate:"required"`
	Game        string          `json:"game" validate:"max=100"`
	Price       string          `json:"price" validate:"max=64"`
	Description string          `json:"description" validate:"required,max=5000"`
	Tags        []string        `json:"tags" validate:"max=20,dive,max=40"`
}

// SearchListings handles GET /listings?q=&category=
func (h *TradeHandler) SearchListings(c echo.Context) error {
	listings, err := h.tradeUC.Search(c.Request().Context(), c.QueryParam("q"), models.Category(c.QueryParam("category")))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listings retrieved successfully", listings)
}

// GetListing handles GET /listings/:id
func (h *TradeHandler) GetListing(c echo.Context) error {
	listing, err := h.tradeUC.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing retrieved successfully", listing)
}

// ListingActions handles GET /listings/:id/actions
func (h *TradeHandler) ListingActions(c echo.Context) error {
	modals, err := h.tradeUC.AvailableModals(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing actions retrieved successfully", modals)
}

// CreateListing handles POST /listings
func (h *TradeHandler) CreateListing(c echo.Context) error {
	var req CreateListingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	handle, flair := middleware.Identity(c)
	listing, err := h.tradeUC.CreateListing(c.Request().Context(), models.NewListing{
		Title:       req.Title,
		Category:    req.Category,
		Game:        req.Game,
		Author:      handle,
		AuthorFlair: flair,
		Price:       req.Price,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Listing created successfully", listing)
}

// Catalog handles GET /catalog
func (h *TradeHandler) Catalog(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Catalog retrieved successfully", h.tradeUC.Catalog())
}
