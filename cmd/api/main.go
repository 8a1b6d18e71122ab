package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barbercrm/internal/app"
	"barbercrm/internal/cache"
	"barbercrm/internal/config"
	"barbercrm/internal/database"
	"barbercrm/internal/logger"

	"go.uber.org/zap"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, logg)
	if err != nil {
		logg.Fatal("db connect failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		logg.Fatal("migrate failed", zap.Error(err))
	}

	c := cache.New(cfg.RedisURL, logg)
	defer func() { _ = c.Close() }()

	a, err := app.New(app.Deps{
		Config:  cfg,
		DB:      db,
		Cache:   c,
		Log:     logg,
		Version: version,
	})
	if err != nil {
		logg.Fatal("app init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down")
	a.Hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
	}
}
