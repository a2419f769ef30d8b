package repository

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"coffee-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRow replays one bookings result row. Assignments are type-exact the
// way pgx codecs are: a DATE value arrives as time.Time and will not scan
// into a string destination.
type stubRow struct {
	values []any
}

func (r stubRow) Scan(dest ...any) error {
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, src := range r.values {
		if err := scanValue(dest[i], src); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

func scanValue(dest, src any) error {
	dv := reflect.ValueOf(dest).Elem()
	if src == nil {
		dv.Set(reflect.Zero(dv.Type()))
		return nil
	}
	sv := reflect.ValueOf(src)
	switch {
	case sv.Type() == dv.Type():
		dv.Set(sv)
	case sv.Kind() == reflect.String && dv.Kind() == reflect.String:
		dv.SetString(sv.String())
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dest)
	}
	return nil
}

func bookingRow(ownerID *uuid.UUID, date time.Time) stubRow {
	now := time.Now()
	return stubRow{values: []any{
		uuid.New(),
		ownerID,
		date,
		"14:00:00",
		4,
		"Rina",
		"rina@example.com",
		"081234567890",
		nil,
		"pending",
		now,
		now,
	}}
}

func TestScanBookingDateColumn(t *testing.T) {
	ownerID := uuid.New()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	booking, err := scanBooking(bookingRow(&ownerID, date))
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", booking.Date)
	assert.Equal(t, "14:00:00", booking.Time)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	require.NotNil(t, booking.UserID)
	assert.Equal(t, ownerID, *booking.UserID)

	startsAt, err := booking.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, 14, startsAt.Hour())
}

func TestScanBookingAnonymous(t *testing.T) {
	booking, err := scanBooking(bookingRow(nil, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.Nil(t, booking.UserID)
	assert.Equal(t, "2026-09-02", booking.Date)
}
