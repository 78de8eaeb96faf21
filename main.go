// File: homeland/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeland/config"
	"homeland/database"
	favoriteRepoPkg "homeland/database/repository/favorite"
	listingRepoPkg "homeland/database/repository/listing"
	predictionRepoPkg "homeland/database/repository/prediction"
	"homeland/handlers"
	"homeland/middleware"
	"homeland/routes"
	"homeland/services/favorite"
	"homeland/services/feed"
	"homeland/services/geo"
	"homeland/services/intelligence"
	"homeland/services/listing"
	"homeland/services/prediction"
	"homeland/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewFirestoreListingRepo()
	favoriteRepo := favoriteRepoPkg.NewFirestoreFavoriteRepo()
	predictionRepo := predictionRepoPkg.NewFirestorePredictionRepo()

	// services.
	feedService := &feed.DefaultFeedService{
		Repo: listingRepo,
	}
	listingService := &listing.DefaultListingService{
		Repo:      listingRepo,
		Favorites: favoriteRepo,
	}
	favoriteService := &favorite.DefaultFavoriteService{
		Repo: favoriteRepo,
	}
	predictionService := prediction.NewDefaultPredictionService(predictionRepo, config.AppConfig.PredictServiceURL)

	ctxStore := intelligence.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute)
	chatService := intelligence.NewDefaultChatService(ctxStore, config.AppConfig.ChatServiceURL)

	geoService := geo.NewDefaultGeoService(config.AppConfig.LocationIQBaseURL, config.AppConfig.LocationIQKey)

	listingHandler := &handlers.ListingHandler{ListingSvc: listingService, FeedSvc: feedService}
	favoriteHandler := &handlers.FavoriteHandler{FavoriteSvc: favoriteService}
	predictionHandler := &handlers.PredictionHandler{PredictionSvc: predictionService}
	chatHandler := &handlers.ChatHandler{ChatSvc: chatService}
	geoHandler := &handlers.GeoHandler{GeoSvc: geoService}
	storageHandler := &handlers.StorageHandler{StorageSvc: cloudinaryStorageService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Listing endpoints.
		FeedHandler:          listingHandler.FeedHandler,
		StreamFeedHandler:    listingHandler.StreamFeedHandler,
		GetListingHandler:    listingHandler.GetListingHandler,
		GetMyListingsHandler: listingHandler.GetMyListingsHandler,
		CreateListingHandler: listingHandler.CreateListingHandler,
		UpdateListingHandler: listingHandler.UpdateListingHandler,
		DeleteListingHandler: listingHandler.DeleteListingHandler,

		// Favorite endpoints.
		ToggleFavoriteHandler:  favoriteHandler.ToggleFavoriteHandler,
		ListFavoritesHandler:   favoriteHandler.ListFavoritesHandler,
		FavoriteStatusHandler:  favoriteHandler.FavoriteStatusHandler,
		StreamFavoritesHandler: favoriteHandler.StreamFavoritesHandler,

		// Prediction endpoints.
		EstimatePriceHandler:     predictionHandler.EstimatePriceHandler,
		PredictionHistoryHandler: predictionHandler.PredictionHistoryHandler,

		// Chat endpoints.
		SendChatHandler:  chatHandler.SendChatHandler,
		ResetChatHandler: chatHandler.ResetChatHandler,

		// Geocoding endpoints.
		AutocompleteHandler:   geoHandler.AutocompleteHandler,
		GeocodeHandler:        geoHandler.GeocodeHandler,
		ReverseGeocodeHandler: geoHandler.ReverseGeocodeHandler,

		// Storage endpoints.
		UploadImageHandler: storageHandler.UploadImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
