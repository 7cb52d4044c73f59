package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/firstoffice/officebooking/internal/kafka"
	"github.com/firstoffice/officebooking/internal/metrics"
	"github.com/firstoffice/officebooking/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const startedAtLayout = "2006-01-02"

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.BookingTransaction, error)
	CheckBooking(ctx context.Context, input CheckBookingInput) (*domain.BookingTransaction, error)
	ApproveBooking(ctx context.Context, id int64) (*domain.BookingTransaction, error)
	ListBookings(ctx context.Context) ([]domain.BookingTransaction, error)
	DeleteBookings(ctx context.Context, ids []int64) (int64, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	offices            repository.OfficeRepository
	producer           Producer
	logger             zerolog.Logger
	bookingTopic       string
	notificationsTopic string
	trxIDPrefix        string
	trxIDAttempts      int
}

type CreateBookingInput struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	StartedAt     string `json:"started_at"`
	OfficeSpaceID int64  `json:"office_space_id"`
}

type CheckBookingInput struct {
	BookingTrxID string `json:"booking_trx_id"`
	PhoneNumber  string `json:"phone_number"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithTrxIDPrefix(prefix string) BookingServiceOption {
	return func(s *BookingService) {
		if prefix != "" {
			s.trxIDPrefix = prefix
		}
	}
}

func WithTrxIDAttempts(attempts int) BookingServiceOption {
	return func(s *BookingService) {
		if attempts > 0 {
			s.trxIDAttempts = attempts
		}
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	offices repository.OfficeRepository,
	producer Producer,
	logger zerolog.Logger,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		offices:       offices,
		producer:      producer,
		logger:        logger,
		bookingTopic:  bookingTopic,
		trxIDPrefix:   "OTRX",
		trxIDAttempts: 3,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the storefront request, derives duration, end
// date and amount from the office package, and persists an unpaid record
// under a fresh trx id.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.BookingTransaction, error) {
	fieldErrs := domain.FieldErrors{}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if strings.TrimSpace(input.PhoneNumber) == "" {
		fieldErrs["phone_number"] = "phone number is required"
	}
	if input.OfficeSpaceID <= 0 {
		fieldErrs["office_space_id"] = "office space id must be positive"
	}
	startedAt, err := time.Parse(startedAtLayout, input.StartedAt)
	if err != nil {
		fieldErrs["started_at"] = "started at must be a valid date (YYYY-MM-DD)"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	office, err := s.offices.GetByID(ctx, input.OfficeSpaceID)
	if err != nil {
		return nil, err
	}

	booking := &domain.BookingTransaction{
		Name:          strings.TrimSpace(input.Name),
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		OfficeSpaceID: office.ID,
		StartedAt:     startedAt,
		EndedAt:       startedAt.AddDate(0, 0, office.Duration),
		Duration:      office.Duration,
		TotalAmount:   office.Price,
	}

	for attempt := 0; ; attempt++ {
		booking.BookingTrxID = s.generateTrxID()
		err = s.bookings.Create(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateTrxID) || attempt+1 >= s.trxIDAttempts {
			return nil, err
		}
	}

	booking.Office = office
	if err := s.publish(ctx, s.bookingTopic, kafka.EventBookingCreated, booking); err != nil {
		s.logger.Warn().Err(err).Str("trx_id", booking.BookingTrxID).Msg("failed to publish booking_created event")
	}
	return booking, nil
}

// CheckBooking returns the booking matching the trx id and phone number
// pair, office detail included. It performs no writes.
func (s *BookingService) CheckBooking(ctx context.Context, input CheckBookingInput) (*domain.BookingTransaction, error) {
	fieldErrs := domain.FieldErrors{}
	if strings.TrimSpace(input.BookingTrxID) == "" {
		fieldErrs["booking_trx_id"] = "booking trx id is required"
	}
	if strings.TrimSpace(input.PhoneNumber) == "" {
		fieldErrs["phone_number"] = "phone number is required"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	booking, err := s.bookings.GetByTrxIDAndPhone(ctx, strings.TrimSpace(input.BookingTrxID), strings.TrimSpace(input.PhoneNumber))
	if err != nil {
		return nil, err
	}

	office, err := s.offices.GetByID(ctx, booking.OfficeSpaceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	booking.Office = office
	return booking, nil
}

// ApproveBooking transitions a booking from unpaid to paid. The update is
// a compare-and-set against is_paid, so invoking it twice yields a single
// transition and a single notification event. The event publish happens
// after the database write and never rolls it back.
func (s *BookingService) ApproveBooking(ctx context.Context, id int64) (*domain.BookingTransaction, error) {
	booking, err := s.bookings.MarkPaid(ctx, id)
	if err != nil {
		return booking, err
	}

	office, err := s.offices.GetByID(ctx, booking.OfficeSpaceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn().Err(err).Int64("office_id", booking.OfficeSpaceID).Msg("failed to load office for approved booking")
	}
	booking.Office = office
	metrics.IncApproved()

	if err := s.publish(ctx, s.notificationsTopic, kafka.EventBookingApproved, booking); err != nil {
		s.logger.Error().Err(err).Str("trx_id", booking.BookingTrxID).Msg("failed to publish booking_approved notification event")
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.BookingTransaction, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) DeleteBookings(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.FieldErrors{"ids": "at least one booking id is required"}
	}
	return s.bookings.SoftDelete(ctx, ids)
}

func (s *BookingService) generateTrxID() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s%s", s.trxIDPrefix, token[:10])
}

func (s *BookingService) publish(ctx context.Context, topic, eventType string, booking *domain.BookingTransaction) error {
	if s.producer == nil || topic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		BookingTrxID: booking.BookingTrxID,
		Name:         booking.Name,
		PhoneNumber:  booking.PhoneNumber,
		TotalAmount:  booking.TotalAmount,
		IsPaid:       booking.IsPaid,
		StartedAt:    booking.StartedAt,
		EndedAt:      booking.EndedAt,
	}
	if booking.Office != nil {
		event.OfficeName = booking.Office.Name
	}
	return s.producer.Publish(ctx, topic, booking.BookingTrxID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
