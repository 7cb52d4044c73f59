package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/firstoffice/officebooking/internal/kafka"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendMessage(ctx context.Context, to, body string) (string, error) {
	args := m.Called(ctx, to, body)
	return args.String(0), args.Error(1)
}

func approvedEvent() kafka.BookingEvent {
	return kafka.BookingEvent{
		Type:         kafka.EventBookingApproved,
		BookingTrxID: "OTRX12345",
		Name:         "Alice",
		PhoneNumber:  "08123",
		OfficeName:   "Angga Park Central",
		IsPaid:       true,
	}
}

func TestNotifier_Handle_ApprovedEvent(t *testing.T) {
	mockMessenger := &MockMessenger{}
	notifier := NewNotifier(mockMessenger, zerolog.Nop())

	ctx := context.Background()
	mockMessenger.On("SendMessage", ctx, "08123", mock.Anything).Return("MSG-1", nil).Once()

	err := notifier.Handle(ctx, approvedEvent())

	assert.NoError(t, err)
	mockMessenger.AssertExpectations(t)

	sentBody := mockMessenger.Calls[0].Arguments.String(2)
	assert.Contains(t, sentBody, "OTRX12345")
	assert.Contains(t, sentBody, "Angga Park Central")
}

func TestNotifier_Handle_IgnoresOtherEvents(t *testing.T) {
	mockMessenger := &MockMessenger{}
	notifier := NewNotifier(mockMessenger, zerolog.Nop())

	event := approvedEvent()
	event.Type = kafka.EventBookingCreated
	event.IsPaid = false

	err := notifier.Handle(context.Background(), event)

	assert.NoError(t, err)
	mockMessenger.AssertNotCalled(t, "SendMessage")
}

func TestNotifier_Handle_DeliveryFailure(t *testing.T) {
	mockMessenger := &MockMessenger{}
	notifier := NewNotifier(mockMessenger, zerolog.Nop())

	ctx := context.Background()
	expectedErr := errors.New("provider down")
	mockMessenger.On("SendMessage", ctx, "08123", mock.Anything).Return("", expectedErr).Once()

	err := notifier.Handle(ctx, approvedEvent())

	assert.ErrorIs(t, err, expectedErr)
}
