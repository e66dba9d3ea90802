package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"clubnavi/portal/internal/config"
	"clubnavi/portal/internal/handler"
	"clubnavi/portal/internal/model"
	"clubnavi/portal/internal/repository"
	"clubnavi/portal/internal/service"
	jwtpkg "clubnavi/portal/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize preview store (in-memory or Redis).
	// The memory backend is single-instance: behind a load balancer a
	// preview created on one instance is invisible on the others.
	// Accepted for previews (single editor, five-minute lifetime); use
	// the Redis backend when that matters.
	var previewStore repository.PreviewStore
	switch cfg.Preview.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		previewStore = repository.NewRedisPreviewStore(redisClient)
		logger.Info("using Redis preview store")
	case "memory":
		previewStore = repository.NewMemoryPreviewStore()
		logger.Info("using in-memory preview store")
	default:
		logger.Fatal("unknown preview backend", zap.String("backend", cfg.Preview.Backend))
	}

	// 6. Initialize repositories
	bannerRepo := repository.NewPGBannerRepository(db)
	clubRepo := repository.NewPGClubRepository(db)
	settingsRepo := repository.NewPGSettingsRepository(db)

	// 7. Initialize JWT manager for editor sessions
	jwtManager := jwtpkg.NewManager(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL)

	// 8. Initialize services
	previewService := service.NewPreviewService(previewStore)
	pageService := service.NewPageService(bannerRepo, clubRepo, settingsRepo, previewService, logger)

	// 9. Initialize handlers
	secureCookies := cfg.Server.Mode == "release"
	previewHandler := handler.NewPreviewHandler(previewService, secureCookies)
	pageHandler := handler.NewPageHandler(pageService)

	// 10. Setup router
	router := handler.SetupRouter(cfg, logger, jwtManager, previewHandler, pageHandler)

	// 11. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 12. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
