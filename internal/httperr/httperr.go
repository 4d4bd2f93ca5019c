// Package httperr maps error kinds to HTTP responses for the delivery layer.
package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gallery-backend/pkg/apperrors"
)

// Respond writes the JSON error response for err. Unexpected errors are
// logged in full server-side and surfaced as a generic 500.
func Respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrMedia):
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		log.Printf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
