package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes and writes the
// standardized error body. Server-side failures are logged and hidden
// behind a generic message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := httpStatus(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func httpStatus(err error) int {
	switch {
	case domainerr.IsValidationError(err),
		errors.Is(err, domainerr.ErrPasswordMismatch),
		errors.Is(err, domainerr.ErrInvalidVIPLevel),
		domainerr.IsInsufficientFundsError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrNoActiveSession):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateError(err),
		errors.Is(err, domainerr.ErrRequestDecided),
		errors.Is(err, domainerr.ErrTransactionSettled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondBindError writes a validation error for malformed request bodies
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Invalid request body: " + err.Error(),
	})
}
