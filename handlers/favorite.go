package handlers

import (
	"io"
	"net/http"

	"homeland/models"
	"homeland/services/favorite"
	"homeland/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavoriteHandler serves the per-user favorites endpoints.
type FavoriteHandler struct {
	FavoriteSvc favorite.FavoriteService
}

// ToggleFavoriteHandler handles POST /api/favorites/toggle. The body
// carries the full listing snapshot plus the state the client believes
// it is in; the response carries the confirmed state.
func (h *FavoriteHandler) ToggleFavoriteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Listing    models.Listing `json:"listing" binding:"required"`
		IsFavorite bool           `json:"isFavorite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid toggle favorite request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isFavorite, err := h.FavoriteSvc.Toggle(c.Request.Context(), contextUserID(c), req.Listing, req.IsFavorite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// ListFavoritesHandler handles GET /api/favorites.
func (h *FavoriteHandler) ListFavoritesHandler(c *gin.Context) {
	favorites, err := h.FavoriteSvc.List(c.Request.Context(), contextUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "count": len(favorites)})
}

// FavoriteStatusHandler handles GET /api/favorites/status/:id.
func (h *FavoriteHandler) FavoriteStatusHandler(c *gin.Context) {
	isFavorite, err := h.FavoriteSvc.IsFavorite(c.Request.Context(), contextUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// StreamFavoritesHandler handles GET /api/favorites/stream with
// server-sent events, one snapshot per store change.
func (h *FavoriteHandler) StreamFavoritesHandler(c *gin.Context) {
	ctx := c.Request.Context()
	updates := make(chan []models.Listing, 1)
	unsubscribe, err := h.FavoriteSvc.Watch(ctx, contextUserID(c), func(favorites []models.Listing) {
		offerLatest(updates, favorites)
	})
	if err != nil {
		utils.GetLogger().Error("Failed to watch favorites", zap.Error(err))
		respondError(c, err)
		return
	}
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case favorites := <-updates:
			c.SSEvent("favorites", favorites)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
