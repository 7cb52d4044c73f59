package notification

import (
	"context"

	"github.com/firstoffice/officebooking/internal/kafka"
	"github.com/firstoffice/officebooking/internal/metrics"
	"github.com/firstoffice/officebooking/internal/whatsapp"
	"github.com/rs/zerolog"
)

// Messenger is the outbound messaging provider surface the notifier needs.
type Messenger interface {
	SendMessage(ctx context.Context, to, body string) (string, error)
}

// Notifier turns approved-booking events into customer WhatsApp messages.
// Delivery failures are counted and returned for logging; they never feed
// back into the approval workflow.
type Notifier struct {
	messenger Messenger
	logger    zerolog.Logger
}

func NewNotifier(messenger Messenger, logger zerolog.Logger) *Notifier {
	return &Notifier{messenger: messenger, logger: logger}
}

func (n *Notifier) Handle(ctx context.Context, event kafka.BookingEvent) error {
	if event.Type != kafka.EventBookingApproved {
		return nil
	}

	body := whatsapp.ConfirmationMessage(event.Name, event.BookingTrxID, event.OfficeName)
	messageID, err := n.messenger.SendMessage(ctx, event.PhoneNumber, body)
	if err != nil {
		metrics.IncNotificationFailure()
		return err
	}

	n.logger.Info().
		Str("trx_id", event.BookingTrxID).
		Str("message_id", messageID).
		Msg("booking confirmation sent")
	return nil
}
