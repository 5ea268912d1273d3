package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/dto"
)

// writeError maps a domain error to an HTTP response. Unexpected errors are
// logged in full and surface as a generic 500; the underlying detail is only
// echoed to the client in development mode.
func writeError(c *gin.Context, logger coreport.Logger, devMode bool, err error) {
	status, message := httpStatus(err)

	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": status,
			"error":  err.Error(),
		})
	}

	response := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
	if devMode {
		response.Stack = err.Error()
	}

	c.JSON(status, response)
}

// httpStatus maps domain errors to an HTTP status and client-safe message
func httpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrEmailTaken):
		return http.StatusConflict, domainerr.ErrEmailTaken.Error()
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized, domainerr.ErrInvalidCredentials.Error()
	case domainerr.IsForbiddenError(err):
		return http.StatusForbidden, domainerr.ErrForbidden.Error()
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound, domainerr.ErrUserNotFound.Error()
	case errors.Is(err, domainerr.ErrTransactionNotFound):
		return http.StatusNotFound, domainerr.ErrTransactionNotFound.Error()
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound, domainerr.ErrNotFound.Error()
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsInvalidStateError(err):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsUserLockedError(err):
		return http.StatusConflict, domainerr.ErrUserLocked.Error()
	case domainerr.IsProviderError(err):
		return http.StatusBadGateway, "payment provider request failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeBindingError reports a request body or parameter validation failure
func writeBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
