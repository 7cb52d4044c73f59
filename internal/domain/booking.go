package domain

import "time"

// BookingTransaction is a reservation of an office space for a date range.
// It starts unpaid and becomes paid exactly once, through admin approval.
type BookingTransaction struct {
	ID            int64
	BookingTrxID  string
	Name          string
	PhoneNumber   string
	OfficeSpaceID int64
	StartedAt     time.Time
	EndedAt       time.Time
	Duration      int
	TotalAmount   int64
	IsPaid        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Office is populated on detail lookups, nil otherwise.
	Office *Office
}

// CanApprove reports whether the approve action applies to the booking.
// The admin UI hides the approve control when this returns false.
func CanApprove(b *BookingTransaction) bool {
	return b != nil && !b.IsPaid
}
