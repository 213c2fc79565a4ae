package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/studio-backend/internal/api/controller"
	"ctchen222/studio-backend/internal/api/repository"
	"ctchen222/studio-backend/internal/api/service"
	"ctchen222/studio-backend/internal/cache"
	"ctchen222/studio-backend/internal/config"
	"ctchen222/studio-backend/internal/db"
	"ctchen222/studio-backend/internal/logger"
	"ctchen222/studio-backend/internal/server"
	"ctchen222/studio-backend/internal/storage"
	"ctchen222/studio-backend/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.UsesDefaultSecret() {
		slog.Warn("SECRET_KEY not set, using insecure development default")
	}

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}

	// Initialize Redis; the site runs uncached when it is unreachable.
	rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		slog.Warn("redis unavailable, running without cache", "addr", cfg.RedisAddr, "error", err)
		rdb = nil
	}
	listCache := cache.NewListCache(rdb)

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to initialize upload store: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	cardRepo := repository.NewCardRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	imageRepo := repository.NewImageRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo, cfg)
	cardService := service.NewCardService(cardRepo, listCache)
	resultService := service.NewResultService(resultRepo, listCache)
	sectionService := service.NewSectionService(sectionRepo, listCache)
	imageService := service.NewImageService(imageRepo, uploads)

	// Create the Gin-based server
	srv := server.NewServer(cfg, server.Controllers{
		User:    controller.NewUserController(userService),
		Card:    controller.NewCardController(cardService, uploads),
		Result:  controller.NewResultController(resultService),
		Section: controller.NewSectionController(sectionService),
		Image:   controller.NewImageController(imageService),
	})

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
