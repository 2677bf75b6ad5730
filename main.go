// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"movies-api/cmd"
	"movies-api/internal/data/repository"
	"movies-api/internal/data/seed"
	"movies-api/internal/wire"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger = logger.With(zap.String("app", config.App.Name))

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Strings("cors_allowed_origins", config.CORS.AllowedOrigins),
	)

	// Load seed dataset
	movies, err := seed.Load(config.Seed.Path)
	if err != nil {
		logger.Fatal("Failed to load seed movies", zap.Error(err), zap.String("path", config.Seed.Path))
	}

	logger.Info("Seed movies loaded", zap.Int("count", len(movies)))

	// Initialize all repositories
	repos := repository.NewRepository(movies, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)

	// Start server
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
