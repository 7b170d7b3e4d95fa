package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/catalog/internal/model"
)

// handleError maps domain errors to HTTP responses. Unrecognized errors are
// reported as a generic 500 so internal details never leak to clients.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthenticationFailed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": model.ErrAuthenticationFailed.Error()})
	case errors.Is(err, model.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": model.ErrPermissionDenied.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
