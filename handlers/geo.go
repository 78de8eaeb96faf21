package handlers

import (
	"net/http"
	"strconv"

	"homeland/services/geo"

	"github.com/gin-gonic/gin"
)

// GeoHandler serves the address-lookup endpoints.
type GeoHandler struct {
	GeoSvc geo.GeoService
}

// AutocompleteHandler handles GET /api/geo/autocomplete?q=...
func (h *GeoHandler) AutocompleteHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	places, err := h.GeoSvc.Autocomplete(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

// GeocodeHandler handles GET /api/geo/search?q=...
func (h *GeoHandler) GeocodeHandler(c *gin.Context) {
	address := c.Query("q")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	places, err := h.GeoSvc.Geocode(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

// ReverseGeocodeHandler handles GET /api/geo/reverse?lat=...&lon=...
func (h *GeoHandler) ReverseGeocodeHandler(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters 'lat' and 'lon' must be numeric"})
		return
	}
	place, err := h.GeoSvc.Reverse(c.Request.Context(), lat, lon)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}
