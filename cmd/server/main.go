package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/catalog"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/client"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/server"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/service"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/storage/cache"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Catalog.Timeout)
	cat, loadErr := catalog.NewLoader(cfg.Catalog, logger).Load(loadCtx)
	cancelLoad()
	if loadErr != nil {
		// The app still serves; catalog routes report the failure.
		logger.Warn("starting with empty verb catalog", zap.Error(loadErr))
	}

	clients := client.InitClients(cfg.AI)
	sessions := cache.NewCache()
	services := service.InitServices(clients, cat, loadErr, sessions, cfg.App, logger)

	srv := server.New(cfg.Server, cfg.Env, services, logger)
	srv.Run()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
