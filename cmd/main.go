package main

import (
	"Fitness-Coach-API/cmd/config"
	migration "Fitness-Coach-API/cmd/database/migrate"
	"Fitness-Coach-API/internal/logger"
	"Fitness-Coach-API/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()
	logger.InitializeLogger(utils.GetConfig("ENV"))
	utils.InitValidator()

	err := run(context.Background())
	if err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until shutdown or a listen failure, then disconnects the store.
func run(ctx context.Context) error {
	documentStore, db := config.NewDocumentStore(ctx, utils.Validate)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		config.DisconnectDB(shutdownCtx, db)
	}()

	if db != nil {
		if err := migration.Migrate(ctx, db); err != nil {
			logger.Warn("migration skipped", zap.Error(err))
		}
	}

	app, err := config.NewApp(documentStore)
	if err != nil {
		return err
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	return app.Listen("0.0.0.0:" + utils.GetConfig("PORT"))
}
