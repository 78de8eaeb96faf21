package handlers

import (
	"io"
	"net/http"

	"homeland/models"
	"homeland/services/feed"
	"homeland/services/listing"
	"homeland/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler serves the feed and the post CRUD endpoints.
type ListingHandler struct {
	ListingSvc listing.ListingService
	FeedSvc    feed.Service
}

// feedSelection resolves the filter query parameters. Unknown band
// labels are a client error, not an empty result.
func feedSelection(c *gin.Context) (feed.Selection, string, bool) {
	sel := feed.Selection{Category: c.Query("category")}

	priceBand, ok := feed.LookupPriceBand(c.Query("price"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown price band: " + c.Query("price")})
		return sel, "", false
	}
	sel.Price = priceBand

	areaBand, ok := feed.LookupAreaBand(c.Query("area"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown area band: " + c.Query("area")})
		return sel, "", false
	}
	sel.Area = areaBand

	return sel, c.Query("q"), true
}

// FeedHandler handles GET /api/listings.
func (h *ListingHandler) FeedHandler(c *gin.Context) {
	sel, query, ok := feedSelection(c)
	if !ok {
		return
	}
	listings, err := h.FeedSvc.Feed(c.Request.Context(), sel, query)
	if err != nil {
		utils.GetLogger().Error("Failed to build feed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}

// StreamFeedHandler handles GET /api/listings/stream. It pushes the
// filtered feed as a server-sent event on every store change. A slow
// client only ever misses intermediate snapshots, never the latest.
func (h *ListingHandler) StreamFeedHandler(c *gin.Context) {
	sel, query, ok := feedSelection(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	updates := make(chan []models.Listing, 1)
	unsubscribe, err := h.FeedSvc.Watch(ctx, sel, query, func(listings []models.Listing) {
		offerLatest(updates, listings)
	})
	if err != nil {
		utils.GetLogger().Error("Failed to watch feed", zap.Error(err))
		respondError(c, err)
		return
	}
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case listings := <-updates:
			c.SSEvent("feed", listings)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// offerLatest replaces whatever snapshot is queued with the newest one.
func offerLatest(ch chan []models.Listing, listings []models.Listing) {
	for {
		select {
		case ch <- listings:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// GetListingHandler handles GET /api/listings/:id.
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := h.ListingSvc.GetListing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMyListingsHandler handles GET /api/listings/mine.
func (h *ListingHandler) GetMyListingsHandler(c *gin.Context) {
	userID := contextUserID(c)
	listings, err := h.ListingSvc.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}

// CreateListingHandler handles POST /api/listings.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Listing
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = contextUserID(c)

	created, err := h.ListingSvc.CreateListing(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create listing", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateListingHandler handles PUT /api/listings/:id.
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Listing
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.ListingSvc.UpdateListing(c.Request.Context(), c.Param("id"), contextUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteListingHandler handles DELETE /api/listings/:id.
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.ListingSvc.DeleteListing(c.Request.Context(), id, contextUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
