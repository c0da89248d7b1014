package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gpavan11/snap-chef/config"
	"github.com/gpavan11/snap-chef/internal/api"
	"github.com/gpavan11/snap-chef/internal/database"
	"github.com/gpavan11/snap-chef/internal/middleware"
	"github.com/gpavan11/snap-chef/internal/provider"
	"github.com/gpavan11/snap-chef/internal/router"
	"github.com/gpavan11/snap-chef/internal/server"
	"github.com/gpavan11/snap-chef/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if providers := cfg.ConfiguredProviders(); len(providers) > 0 {
		log.Printf("Configured providers: %s", strings.Join(providers, ", "))
	} else {
		log.Printf("No providers configured, running in demo/fallback mode")
	}

	// Provider chains, best accuracy first.
	detectors := []provider.DetectionProvider{
		provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL),
		provider.NewGoogleVision(cfg.GoogleVisionAPIKey, ""),
		provider.NewClarifai(cfg.ClarifaiAPIKey, ""),
		provider.NewHuggingFace(cfg.HuggingFaceAPIKey, ""),
	}
	recipers := []provider.RecipeProvider{
		provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL),
		provider.NewSpoonacular(cfg.SpoonacularAPIKey, ""),
	}
	nutrition := []provider.NutritionProvider{
		provider.NewEdamam(cfg.EdamamAppID, cfg.EdamamAppKey, ""),
	}
	coordinator := service.NewCoordinator(detectors, recipers, nutrition)

	// Redis is optional; caching and rate limiting degrade away without it.
	var redisClient *redis.Client
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, caching and rate limiting disabled: %v", err)
			redisClient = nil
		}
	}
	cache := service.NewResultCache(redisClient)

	var detectionLimiter *middleware.RateLimiter
	if redisClient != nil {
		detectionLimiter = middleware.NewDetectionRateLimiter(redisClient)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Printf("Warning: history database unavailable: %v", err)
		db = nil
	}
	history := service.NewHistoryService(db)

	ctx := context.Background()
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Printf("Warning: S3 unavailable, photo storage disabled: %v", err)
		s3Config = nil
	}
	images := service.NewImageService(s3Config)

	detectHandler := api.NewDetectHandler(coordinator, cache, images, history)
	recipeHandler := api.NewRecipeHandler(coordinator, cache)
	nutritionHandler := api.NewNutritionHandler(coordinator)
	healthHandler := api.NewHealthHandler(coordinator)

	r := router.SetupRouter(detectHandler, recipeHandler, nutritionHandler, healthHandler, detectionLimiter)
	srv := server.New(r, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
