package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/app"
	"github.com/vlkr/booking_api/internal/config"
	"github.com/vlkr/booking_api/internal/controller/httpapi"
	"github.com/vlkr/booking_api/internal/notification"
	"github.com/vlkr/booking_api/internal/repository"
	"github.com/vlkr/booking_api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	var sinks []notification.Sink
	if len(cfg.KafkaBrokers) > 0 && cfg.NotifyTopic != "" {
		kafkaSink := notification.NewKafkaSink(cfg.KafkaBrokers, cfg.NotifyTopic)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
		logger.Info("Kafka notification sink enabled", zap.String("topic", cfg.NotifyTopic))
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		telegramSink, err := notification.NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("Telegram notification sink disabled", zap.Error(err))
		} else {
			sinks = append(sinks, telegramSink)
			logger.Info("Telegram notification sink enabled", zap.Int64("chat_id", cfg.TelegramChatID))
		}
	}
	notifier := notification.NewNotifier(logger, sinks...)

	availabilityService := service.NewAvailabilityService(templateRepo, reservationRepo, logger)
	bookingService := service.NewBookingService(serviceRepo, templateRepo, reservationRepo, userRepo, notifier, logger)
	catalogService := service.NewCatalogService(serviceRepo, templateRepo, logger)
	userService := service.NewUserService(userRepo, notifier, logger)

	handler := httpapi.NewHandler(availabilityService, bookingService, catalogService, userService, logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
