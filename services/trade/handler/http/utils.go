package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/utils"
)

// statusFor maps a domain error to its HTTP status. NotFound is checked first
// so lookup misses that also carry Validation or InvalidState read as 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnpayable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrRailFailure):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes err in the standard envelope
func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.ErrorResponseHandler(c, status, err.Error())
}

// bindAndValidate decodes the body into req and runs its validate tags. When
// it reports false the 400 response has already been written.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return false, utils.BadRequestResponse(c, utils.ValidationMessage(err))
	}
	return true, nil
}
