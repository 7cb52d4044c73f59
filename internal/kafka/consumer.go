package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded booking event. A returned error
// stops the consume loop.
type EventHandler func(ctx context.Context, event BookingEvent) error

type Consumer struct {
	reader *kafka.Reader
	logger zerolog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, logger zerolog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       1 << 20,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		logger: logger,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads booking events until the context is cancelled or the
// handler fails. Payloads that do not decode as a BookingEvent are logged
// and skipped so one malformed record cannot stall the topic.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		if err := c.dispatch(ctx, msg.Value, handler); err != nil {
			return err
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, payload []byte, handler EventHandler) error {
	var event BookingEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.logger.Warn().Err(err).Msg("skipping undecodable booking event")
		return nil
	}
	return handler(ctx, event)
}
