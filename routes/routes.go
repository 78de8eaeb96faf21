package routes

import (
	"net/http"
	"time"

	"homeland/handlers"
	"homeland/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterListingRoutes registers the feed and post endpoints. Reads are
// public; writes require a signed-in owner.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.FeedHandler)
		api.GET("/stream", hb.StreamFeedHandler)
		api.GET("/:id", hb.GetListingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/mine", hb.GetMyListingsHandler)
		protected.POST("", hb.CreateListingHandler)
		protected.PUT("/:id", hb.UpdateListingHandler)
		protected.DELETE("/:id", hb.DeleteListingHandler)
	}
}

// RegisterFavoriteRoutes registers favorite endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		// Toggle carries its own authentication semantics: anonymous
		// requests get a 401 from the service without a store write.
		api.POST("/toggle", middleware.OptionalAuthMiddleware(), hb.ToggleFavoriteHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("", hb.ListFavoritesHandler)
		protected.GET("/status/:id", hb.FavoriteStatusHandler)
		protected.GET("/stream", hb.StreamFavoritesHandler)
	}
}

// RegisterPredictionRoutes registers price-estimation endpoints.
func RegisterPredictionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/predict")
	{
		api.POST("", middleware.OptionalAuthMiddleware(), hb.EstimatePriceHandler)
		api.GET("/history", middleware.JWTAuthMiddleware(), hb.PredictionHistoryHandler)
	}
}

// RegisterChatRoutes registers assistant chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.SendChatHandler)
		api.DELETE("/context", hb.ResetChatHandler)
	}
}

// RegisterGeoRoutes registers address-lookup endpoints.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.GET("/autocomplete", hb.AutocompleteHandler)
		api.GET("/search", hb.GeocodeHandler)
		api.GET("/reverse", hb.ReverseGeocodeHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/images", hb.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Homeland"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterListingRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterPredictionRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
