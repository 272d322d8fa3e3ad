package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/ThePeregrineCo/carstarz-registry/internal/api/shared/errors"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps service-layer sentinel errors to HTTP responses.
// Anything unmatched is treated as an infrastructure failure.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrEventNotFound):
		respondWithError(c, http.StatusNotFound, apierrors.NewNotFoundError(message, err.Error()))

	case errors.Is(err, domain.ErrIdentityExists),
		errors.Is(err, domain.ErrVehicleExists),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrAlreadyFollowing):
		respondWithError(c, http.StatusConflict, apierrors.NewConflictError(message, err.Error()))

	case errors.Is(err, domain.ErrNotOwner):
		respondWithError(c, http.StatusForbidden, apierrors.NewForbiddenError(message, err.Error()))

	case errors.Is(err, domain.ErrNoIdentity):
		respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, err.Error()))

	default:
		respondInternalError(c, err, message)
	}
}
