package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"showcase-portal-backend/internal/api/routes"
	"showcase-portal-backend/internal/cache"
	"showcase-portal-backend/internal/config"
	"showcase-portal-backend/internal/database"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/queue"
	"showcase-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "showcase-portal-backend/docs" // This is needed for swag
)

//	@title			Showcase Portal API
//	@version		1.0
//	@description	Reuse case submission, review workflow and dataset associations for the open data portal.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFile)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra := routes.Infrastructure{}

	if cfg.CacheEnabled() {
		infra.Redis = cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if infra.Redis != nil {
			defer infra.Redis.Close()
		}
	}

	if cfg.NotificationsEnabled() {
		publisher := queue.NewPublisher(cfg.RabbitMQURL, cfg.NotificationQueue)
		defer publisher.Close()
		infra.Publisher = publisher
	} else {
		infra.Publisher = queue.NoopPublisher{}
	}

	if cfg.StorageURL != "" {
		store, err := storage.Open(ctx, cfg.StorageURL)
		if err != nil {
			logrus.Warnf("Image uploads disabled: %v", err)
		} else {
			defer store.Close()
			infra.Store = store
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, infra)
	if err != nil {
		logrus.Fatal("Failed to configure routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Graceful shutdown failed: %v", err)
	}
}
