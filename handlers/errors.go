package handlers

import (
	"errors"
	"net/http"

	"homeland/database"
	"homeland/models"
	"homeland/services/favorite"
	"homeland/services/listing"
	"homeland/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var remoteErr *models.RemoteServiceError
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, listing.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, favorite.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &remoteErr):
		utils.GetLogger().Error("Upstream service error",
			zap.String("service", remoteErr.Service),
			zap.Int("status", remoteErr.Status),
			zap.String("detail", remoteErr.Detail))
		c.JSON(http.StatusBadGateway, gin.H{"error": remoteErr.Detail})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// contextUserID returns the user ID placed by the auth middleware, or ""
// for anonymous requests.
func contextUserID(c *gin.Context) string {
	val, ok := c.Get("userID")
	if !ok {
		return ""
	}
	userID, _ := val.(string)
	return userID
}
