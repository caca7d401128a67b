package main

import (
	"log"

	"github.com/Sonkaryasshu/stealth-e-com/internal/api/handlers"
	"github.com/Sonkaryasshu/stealth-e-com/internal/catalog"
	"github.com/Sonkaryasshu/stealth-e-com/internal/config"
	"github.com/Sonkaryasshu/stealth-e-com/internal/health"
	"github.com/Sonkaryasshu/stealth-e-com/internal/middleware"
	"github.com/Sonkaryasshu/stealth-e-com/internal/session"
	"github.com/Sonkaryasshu/stealth-e-com/internal/ui"
	"github.com/Sonkaryasshu/stealth-e-com/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.ValidateBackend(); err != nil {
		logger.WithError(err).Fatal("Backend configuration validation failed")
	}

	client := catalog.NewClient(cfg.Backend.URL, logger)
	store := session.NewStore(client, cfg.Session.TTL, logger)
	checker := health.NewChecker(cfg.Backend.URL, store, logger)
	storefront := handlers.NewStorefrontHandler(store, checker, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.Default())

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute)

	router.SetHTMLTemplate(ui.Templates())

	router.GET("/", storefront.Index)
	router.GET("/healthz", storefront.Health)

	actions := router.Group("/", limiter.RateLimit())
	{
		actions.POST("/search", storefront.Search)
		actions.POST("/reset", storefront.Reset)
		actions.POST("/cards/:key/image-error", storefront.ImageError)
		actions.POST("/cards/:key/citations", storefront.ToggleCitations)
	}

	logger.WithField("port", cfg.Server.Port).Info("Starting storefront server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server exited")
	}
}
