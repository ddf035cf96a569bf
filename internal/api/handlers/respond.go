package handlers

import (
	"errors"
	"net/http"

	"showcase-portal-backend/internal/auth"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string      `json:"error" example:"showcase not found"`
	Details interface{} `json:"details,omitempty" swaggertype:"object"`
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error, fallback string) {
	var fieldErrs apperrors.ValidationErrors
	var fieldErr *apperrors.ValidationError

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation error", Details: map[string]string(fieldErrs)})
	case errors.As(err, &fieldErr):
		var details interface{}
		if fieldErr.Field != "" {
			details = map[string]string{fieldErr.Field: fieldErr.Message}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fieldErr.Message, Details: details})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Details: err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
}

// actorFrom builds the acting user from the claims set by the auth middleware
func actorFrom(c *gin.Context) service.Actor {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		return service.Anonymous()
	}
	id, ok := auth.GetUserID(c)
	if !ok {
		return service.Anonymous()
	}
	return service.Actor{UserID: &id, Username: claims.Username, Sysadmin: claims.Sysadmin}
}
