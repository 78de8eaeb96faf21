package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Listing endpoints
	FeedHandler          gin.HandlerFunc
	StreamFeedHandler    gin.HandlerFunc
	GetListingHandler    gin.HandlerFunc
	GetMyListingsHandler gin.HandlerFunc
	CreateListingHandler gin.HandlerFunc
	UpdateListingHandler gin.HandlerFunc
	DeleteListingHandler gin.HandlerFunc

	// Favorite endpoints
	ToggleFavoriteHandler  gin.HandlerFunc
	ListFavoritesHandler   gin.HandlerFunc
	FavoriteStatusHandler  gin.HandlerFunc
	StreamFavoritesHandler gin.HandlerFunc

	// Prediction endpoints
	EstimatePriceHandler     gin.HandlerFunc
	PredictionHistoryHandler gin.HandlerFunc

	// Chat endpoints
	SendChatHandler  gin.HandlerFunc
	ResetChatHandler gin.HandlerFunc

	// Geocoding endpoints
	AutocompleteHandler   gin.HandlerFunc
	GeocodeHandler        gin.HandlerFunc
	ReverseGeocodeHandler gin.HandlerFunc

	// Storage endpoints
	UploadImageHandler gin.HandlerFunc
}
