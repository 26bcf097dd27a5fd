package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/trovehq/trove-backend/internal/core/services"
	"github.com/trovehq/trove-backend/internal/handlers"
	"github.com/trovehq/trove-backend/internal/middleware"
	"github.com/trovehq/trove-backend/internal/platform/config"
	"github.com/trovehq/trove-backend/internal/repositories/database/sqlite"
	"github.com/trovehq/trove-backend/pkg/database"
)

// @title Trove Backend API
// @version 1.0
// @description Personal finance tracking API: accounts, transactions, transfers, reports, and backups.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the store: applies migrations and stamps the app signature.
	store, err := database.Open(cfg.DBPath, cfg.AppSignature)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()), slog.String("path", cfg.DBPath))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing store", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Store opened", slog.String("path", cfg.DBPath))

	repos := sqlite.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, store, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
