package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/zipplink/zipp/internal/auth"
	"github.com/zipplink/zipp/internal/clicks"
	"github.com/zipplink/zipp/internal/config"
	"github.com/zipplink/zipp/internal/database"
	"github.com/zipplink/zipp/internal/enrich"
	"github.com/zipplink/zipp/internal/handlers"
	"github.com/zipplink/zipp/internal/repositories"
	"github.com/zipplink/zipp/internal/router"
	"github.com/zipplink/zipp/internal/service"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.ApplyMigrations(cfg.PgMigrationsPath, cfg.DatabaseDSN, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	urlRepo := repositories.NewURLRepository(db)
	clickRepo := repositories.NewClickRepository(db)

	geo := enrich.NewGeoClient(cfg.GeoAPIURL, cfg.GeoTimeout, logger)
	enricher := enrich.NewEnricher(geo, logger)

	recorder := clicks.NewRecorder(clickRepo, enricher, cfg.ClickBufferSize, cfg.ClickWorkers, logger)
	recorder.Start()

	authManager := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	shortener := service.NewShortenerService(urlRepo, logger, cfg.BaseURL)
	handler := handlers.NewHandler(shortener, userRepo, authManager, recorder, logger)

	r := router.NewRouter(handler, authManager, logger)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("address", cfg.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	// Drain buffered clicks; anything still being enriched when the
	// timeout above expires is lost, which recording accepts.
	recorder.Close()
	logger.Info("server stopped")
}
