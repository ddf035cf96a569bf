package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"showcase-portal-backend/internal/config"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/mailer"
	"showcase-portal-backend/internal/queue"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	if !cfg.NotificationsEnabled() {
		logrus.Fatal("RABBITMQ_URL is not configured")
	}

	m, err := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		TLS:      cfg.SMTPTLS,
	})
	if err != nil {
		logrus.Fatal("Failed to configure mailer:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := queue.NewConsumer(cfg.RabbitMQURL, cfg.NotificationQueue, m.Handle)
	logrus.WithField("queue", cfg.NotificationQueue).Info("Notifier started")
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logrus.Fatal("Notifier stopped:", err)
	}
	logrus.Info("Notifier stopped")
}
