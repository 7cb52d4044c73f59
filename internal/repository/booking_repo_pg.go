package repository

import (
	"context"
	"errors"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateTrxID is returned when an insert hits the unique constraint
// on booking_trx_id; the caller regenerates and retries.
var ErrDuplicateTrxID = errors.New("duplicate booking trx id")

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingTransaction) error
	GetByID(ctx context.Context, id int64) (*domain.BookingTransaction, error)
	GetByTrxIDAndPhone(ctx context.Context, trxID, phone string) (*domain.BookingTransaction, error)
	List(ctx context.Context) ([]domain.BookingTransaction, error)
	MarkPaid(ctx context.Context, id int64) (*domain.BookingTransaction, error)
	SoftDelete(ctx context.Context, ids []int64) (int64, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, booking_trx_id, name, phone_number, office_space_id, started_at, ended_at, duration, total_amount, is_paid, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.BookingTransaction) error {
	err := r.db.QueryRow(ctx, `INSERT INTO booking_transactions (booking_trx_id, name, phone_number, office_space_id, started_at, ended_at, duration, total_amount, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
		RETURNING id, is_paid, created_at, updated_at`,
		booking.BookingTrxID, booking.Name, booking.PhoneNumber, booking.OfficeSpaceID,
		booking.StartedAt, booking.EndedAt, booking.Duration, booking.TotalAmount).
		Scan(&booking.ID, &booking.IsPaid, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateTrxID
		}
		return err
	}
	return nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingTransaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM booking_transactions WHERE id=$1 AND deleted_at IS NULL`, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) GetByTrxIDAndPhone(ctx context.Context, trxID, phone string) (*domain.BookingTransaction, error) {
	// Most recent booking wins when a repeat customer shares the pair.
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM booking_transactions
		WHERE booking_trx_id=$1 AND phone_number=$2 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT 1`, trxID, phone)
	return scanBooking(row)
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.BookingTransaction, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM booking_transactions WHERE deleted_at IS NULL ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingTransaction, 0)
	for rows.Next() {
		var b domain.BookingTransaction
		if err := rows.Scan(&b.ID, &b.BookingTrxID, &b.Name, &b.PhoneNumber, &b.OfficeSpaceID, &b.StartedAt, &b.EndedAt, &b.Duration, &b.TotalAmount, &b.IsPaid, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// MarkPaid flips is_paid only when the booking is currently unpaid, so a
// concurrent double approve performs a single transition.
func (r *PGBookingRepository) MarkPaid(ctx context.Context, id int64) (*domain.BookingTransaction, error) {
	row := r.db.QueryRow(ctx, `UPDATE booking_transactions SET is_paid=TRUE, updated_at=now()
		WHERE id=$1 AND is_paid=FALSE AND deleted_at IS NULL
		RETURNING `+bookingColumns, id)
	booking, err := scanBooking(row)
	if err == nil {
		return booking, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// No row updated: either missing or already paid.
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if current.IsPaid {
		return current, domain.ErrAlreadyPaid
	}
	return nil, domain.ErrNotFound
}

func (r *PGBookingRepository) SoftDelete(ctx context.Context, ids []int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE booking_transactions SET deleted_at=now(), updated_at=now() WHERE id = ANY($1) AND deleted_at IS NULL`, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanBooking(row pgx.Row) (*domain.BookingTransaction, error) {
	var b domain.BookingTransaction
	err := row.Scan(&b.ID, &b.BookingTrxID, &b.Name, &b.PhoneNumber, &b.OfficeSpaceID, &b.StartedAt, &b.EndedAt, &b.Duration, &b.TotalAmount, &b.IsPaid, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
