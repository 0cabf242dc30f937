package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"permit_tracker/internal/usecase"
	"permit_tracker/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapUseCaseError maps the use case error categories. Area handlers match their specific
// errors first and fall back to this.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReference):
		return pkg.NewDomainError("REFERENCE_NOT_FOUND", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrency):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Resource was modified concurrently, retry the request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
