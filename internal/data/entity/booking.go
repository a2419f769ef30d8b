package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CancelWindow is how far ahead of the reserved time a guest may still
// cancel their own booking.
const CancelWindow = 2 * time.Hour

type Booking struct {
	Base
	UserID *uuid.UUID    `db:"user_id"`
	Date   string        `db:"date"` // YYYY-MM-DD
	Time   string        `db:"time"` // HH:MM:SS, 24-hour
	Guests int           `db:"guests"`
	Name   string        `db:"name"`
	Email  string        `db:"email"`
	Phone  string        `db:"phone"`
	Notes  *string       `db:"notes"`
	Status BookingStatus `db:"status"`
}

// StartsAt combines the stored date and time into an instant.
func (b *Booking) StartsAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", fmt.Sprintf("%s %s", b.Date, b.Time), time.Local)
}

// CancellableBy reports whether the given user may cancel this booking at
// the given moment: owner only, still pending, and more than the cancel
// window before the reserved time.
func (b *Booking) CancellableBy(userID uuid.UUID, now time.Time) bool {
	if b.UserID == nil || *b.UserID != userID {
		return false
	}
	if b.Status != BookingStatusPending {
		return false
	}

	startsAt, err := b.StartsAt()
	if err != nil {
		return false
	}

	return startsAt.After(now.Add(CancelWindow))
}
