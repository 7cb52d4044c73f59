package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/firstoffice/officebooking/config"
	"github.com/firstoffice/officebooking/internal/kafka"
	"github.com/firstoffice/officebooking/internal/logging"
	"github.com/firstoffice/officebooking/internal/notification"
	"github.com/firstoffice/officebooking/internal/whatsapp"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, logger)
	defer consumer.Close()

	notifier := notification.NewNotifier(whatsapp.NewClient(cfg.Messaging), logger)

	logger.Info().Str("topic", cfg.Kafka.NotificationsTopic).Msg("notification worker started")

	// Delivery failures are logged and skipped so one bad send does not
	// stall the notifications topic.
	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := notifier.Handle(ctx, event); err != nil {
			logger.Error().Err(err).Str("trx_id", event.BookingTrxID).Msg("whatsapp delivery failed")
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.Fatal().Err(err).Msg("consumer stopped")
	}
}
