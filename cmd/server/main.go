package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"songvault/internal/cache"
	"songvault/internal/config"
	"songvault/internal/handlers"
	"songvault/internal/handlers/render"
	"songvault/internal/models"
	"songvault/internal/repositories"
	"songvault/internal/seed"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := models.NewDatabase(context.Background(), cfg.MongodbURL, cfg.MongodbDatabase)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.CreateIndexes(context.Background()); err != nil {
		slog.Error("Failed to create database indexes", "error", err)
		os.Exit(1)
	}

	// Initialize cache; without a Valkey URL reads are cached in-process
	var songCache cache.Cache
	if cfg.ValkeyURL != "" {
		songCache, err = cache.NewValkeyCache(cfg.ValkeyURL)
		if err != nil {
			slog.Error("Failed to initialize cache", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("VALKEY_URL not set, using in-memory cache")
		songCache = cache.NewMemoryCache()
	}
	defer songCache.Close()

	// Initialize repository and handlers
	songRepo := repositories.NewCachedSongRepository(repositories.NewMongoSongRepository(db), songCache)
	renderer := render.NewSongRenderer(cfg.BaseURL)

	songHandler := handlers.NewSongHandler(songRepo, renderer, seed.NewGenerator())
	healthHandler := handlers.NewHealthHandler(db, songCache)

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	handlers.RegisterRoutes(engine, songHandler, healthHandler)

	slog.Info("Starting server", "port", cfg.Port, "baseURL", cfg.BaseURL)
	if err := engine.Run(":" + cfg.Port); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
