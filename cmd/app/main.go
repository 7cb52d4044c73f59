package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/firstoffice/officebooking/config"
	"github.com/firstoffice/officebooking/internal/bootstrap"
	"github.com/firstoffice/officebooking/internal/cache"
	"github.com/firstoffice/officebooking/internal/kafka"
	"github.com/firstoffice/officebooking/internal/logging"
	"github.com/firstoffice/officebooking/internal/repository"
	"github.com/firstoffice/officebooking/internal/service/booking"
	"github.com/firstoffice/officebooking/internal/service/offices"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.Logging, cfg.App)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.CatalogCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	officeRepo := repository.NewOfficeRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	officeService := offices.NewOfficeService(officeRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		officeRepo,
		producer,
		logger,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithTrxIDPrefix(cfg.Booking.TrxIDPrefix),
		booking.WithTrxIDAttempts(cfg.Booking.TrxIDRetryAttempts),
	)

	logger.Info().Str("addr", cfg.HTTP.Address).Msg("starting http server")
	if err := bootstrap.Run(ctx, cfg, officeService, bookingService); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
