package handler

import (
	"errors"
	"net/http"

	"CampusVault/internal/service"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
		return
	}
	var cerr *service.ConflictError
	if errors.As(err, &cerr) {
		if cerr.ResourceID != 0 {
			c.JSON(http.StatusConflict, gin.H{
				"message": cerr.Message,
				"resource": gin.H{
					"id":    cerr.ResourceID,
					"title": cerr.ResourceTitle,
				},
			})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Message})
		return
	}
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actorID reads the authenticated user from the request context.
func actorID(c *gin.Context) uint64 {
	return c.MustGet("user_id").(uint64)
}
