// File: habi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habi/config"
	"habi/database"
	bookingRepoPkg "habi/database/repository/booking"
	categoryRepoPkg "habi/database/repository/category"
	laundryRepoPkg "habi/database/repository/laundry"
	profileRepoPkg "habi/database/repository/profile"
	providerRepoPkg "habi/database/repository/provider"
	"habi/database/seed"
	"habi/handlers"
	"habi/middleware"
	"habi/routes"
	"habi/services/assistant"
	"habi/services/booking"
	"habi/services/catalog"
	"habi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	categoryRepo := categoryRepoPkg.NewMongoCategoryRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	laundryRepo := laundryRepoPkg.NewMongoLaundryRepo()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	if err := seed.SeedReferenceData(seedCtx, categoryRepo, laundryRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed reference data: %v", err)
	}
	cancelSeed()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Categories: categoryRepo,
		Providers:  provRepo,
		Logger:     logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Providers: provRepo,
		Profiles:  profileRepo,
		Laundry:   laundryRepo,
		Logger:    logger,
	}

	convStore := assistant.NewRedisConversationStore(
		utils.GetChatCacheClient(),
		time.Duration(config.AppConfig.ChatSessionTTLMin)*time.Minute,
	)
	assistantService := assistant.NewDefaultAssistantService(provRepo, convStore, logger)

	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	assistantHandler := handlers.NewAssistantHandler(assistantService, logger)
	profileHandler := handlers.NewProfileHandler(profileRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profileRepo,

		// Catalog endpoints.
		ListCategoriesHandler:      catalogHandler.ListCategories,
		ProvidersByCategoryHandler: catalogHandler.ProvidersByCategory,
		SearchProvidersHandler:     catalogHandler.SearchProviders,
		LaundryMenuHandler:         bookingHandler.LaundryMenu,

		// Assistant endpoints.
		ChatHandler:              assistantHandler.Chat,
		GetConversationHandler:   assistantHandler.GetConversation,
		ClearConversationHandler: assistantHandler.ClearConversation,

		// Booking endpoints.
		CreateGeneralBookingHandler: bookingHandler.CreateGeneral,
		CreateLaundryBookingHandler: bookingHandler.CreateLaundry,
		UpdateBookingStatusHandler:  bookingHandler.UpdateStatus,
		ListMyBookingsHandler:       bookingHandler.ListMine,

		// Profile endpoints.
		GetProfileHandler: profileHandler.GetProfile,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetChatCacheClient()},
		database.MongoClient,
	)

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
