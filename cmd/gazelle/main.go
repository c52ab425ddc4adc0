package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gazelle/internal/api"
	"gazelle/internal/api/handlers"
	"gazelle/internal/repository"
	"gazelle/internal/service"
	"gazelle/pkg/config"
	"gazelle/pkg/logger"
	"gazelle/pkg/postgres"

	"go.uber.org/zap"
)

// @title Gazelle Relief API
// @version 1.0
// @description Disaster-relief supply matching backend: chat turns, donation recording, supply search

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Gazelle relief service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	supplyRepo := repository.NewSupplyRepository(db, appLogger)

	claudeService := service.NewClaudeService(&cfg.Claude, appLogger)
	chatService := service.NewChatService(claudeService, supplyRepo, &cfg.Mapbox, &cfg.Defaults, appLogger)

	chatHandler := handlers.NewChatHandler(chatService, appLogger)

	app := api.SetupRouter(chatHandler, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
