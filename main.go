package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"movies-api/cmd"
	"movies-api/internal/data/repository"
	"movies-api/internal/wire"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
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

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("unique_ids", config.Store.UniqueIDs),
		zap.Bool("rate_limit", config.Limiter.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// In-memory store, lives until the process exits
	repos := repository.NewRepository(logger, repository.WithUniqueIDs(config.Store.UniqueIDs))

	// Wire all dependencies
	app := wire.Wiring(ctx, repos, config, logger)

	opts := cmd.ServerOptions{
		Port:            config.App.Port,
		ReadTimeout:     config.Server.ReadTimeout,
		WriteTimeout:    config.Server.WriteTimeout,
		ShutdownTimeout: config.Server.ShutdownTimeout,
	}
	if err := cmd.APIServer(ctx, app.Router, opts, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
