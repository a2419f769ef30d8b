package usecase

import (
	"context"
	"testing"
	"time"

	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/dto/request"
	"coffee-booking/pkg/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingFixture(t *testing.T) (BookingService, *fakeBookingRepo, *recordingNotifier) {
	t.Helper()
	bookings := newFakeBookingRepo()
	notifier := &recordingNotifier{}
	return NewBookingService(bookings, notifier, zap.NewNop()), bookings, notifier
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Date:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:   "02:00 PM",
		Guests: 4,
		Name:   "Dana Meyer",
		Email:  "dana@example.com",
		Phone:  "08123456789",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	service, bookings, notifier := newBookingFixture(t)
	userID := uuid.New().String()

	resp, err := service.CreateBooking(ctx, userID, validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, "14:00:00", resp.Time)
	assert.Equal(t, "2:00 PM", resp.DisplayTime)
	assert.Equal(t, 4, resp.Guests)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, userID, *resp.UserID)
	assert.True(t, resp.Cancellable)

	bookingUUID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	stored, _ := bookings.FindByID(ctx, bookingUUID)
	require.NotNil(t, stored)
	assert.Equal(t, "14:00:00", stored.Time)

	events := notifier.published()
	require.Len(t, events, 1)
	assert.Equal(t, "bookings", events[0].Table)
	assert.Equal(t, realtime.EventInsert, events[0].Type)
}

func TestCreateBookingAsGuest(t *testing.T) {
	ctx := context.Background()
	service, bookings, _ := newBookingFixture(t)

	resp, err := service.CreateBooking(ctx, "", validBookingRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.UserID)
	assert.False(t, resp.Cancellable)

	bookingUUID, _ := uuid.Parse(resp.ID)
	stored, _ := bookings.FindByID(ctx, bookingUUID)
	assert.Nil(t, stored.UserID)
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	service, bookings, _ := newBookingFixture(t)

	t.Run("unknown time slot", func(t *testing.T) {
		req := validBookingRequest()
		req.Time = "02:30 PM"
		_, err := service.CreateBooking(ctx, "", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid time slot")
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validBookingRequest()
		req.Date = "next tuesday"
		_, err := service.CreateBooking(ctx, "", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("date in the past", func(t *testing.T) {
		req := validBookingRequest()
		req.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		_, err := service.CreateBooking(ctx, "", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot book a table in the past")
	})

	t.Run("too many guests", func(t *testing.T) {
		req := validBookingRequest()
		req.Guests = 9
		_, err := service.CreateBooking(ctx, "", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("missing contact details", func(t *testing.T) {
		req := validBookingRequest()
		req.Phone = ""
		_, err := service.CreateBooking(ctx, "", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	assert.Empty(t, bookings.bookings)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	service, bookings, notifier := newBookingFixture(t)
	userID := uuid.New().String()

	created, err := service.CreateBooking(ctx, userID, validBookingRequest())
	require.NoError(t, err)

	resp, err := service.CancelBooking(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, resp.Status)

	bookingUUID, _ := uuid.Parse(created.ID)
	stored, _ := bookings.FindByID(ctx, bookingUUID)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)

	events := notifier.published()
	require.Len(t, events, 2)
	assert.Equal(t, realtime.EventUpdate, events[1].Type)
}

func TestCancelBookingDeniedForOtherUsers(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newBookingFixture(t)

	created, err := service.CreateBooking(ctx, uuid.New().String(), validBookingRequest())
	require.NoError(t, err)

	_, err = service.CancelBooking(ctx, uuid.New().String(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel")
}

func TestCancelBookingDeniedWhenNotPending(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newBookingFixture(t)
	userID := uuid.New().String()

	created, err := service.CreateBooking(ctx, userID, validBookingRequest())
	require.NoError(t, err)

	_, err = service.UpdateStatus(ctx, created.ID, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	_, err = service.CancelBooking(ctx, userID, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel")
}

func TestCancelBookingDeniedInsideWindow(t *testing.T) {
	ctx := context.Background()
	service, bookings, _ := newBookingFixture(t)
	userID := uuid.New().String()
	userUUID, _ := uuid.Parse(userID)

	// Seed a pending booking starting within the cancel window
	start := time.Now().Add(time.Hour)
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		UserID: &userUUID,
		Date:   start.Format("2006-01-02"),
		Time:   start.Format("15:04:05"),
		Guests: 2,
		Name:   "Dana Meyer",
		Email:  "dana@example.com",
		Phone:  "08123456789",
		Status: entity.BookingStatusPending,
	}
	require.NoError(t, bookings.Create(ctx, booking))

	_, err := service.CancelBooking(ctx, userID, booking.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel")
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	service, _, notifier := newBookingFixture(t)

	created, err := service.CreateBooking(ctx, "", validBookingRequest())
	require.NoError(t, err)

	for _, status := range []string{"confirmed", "completed", "cancelled", "pending"} {
		resp, err := service.UpdateStatus(ctx, created.ID, &request.UpdateBookingStatusRequest{Status: status})
		require.NoError(t, err, "status %s", status)
		assert.Equal(t, entity.BookingStatus(status), resp.Status)
	}

	_, err = service.UpdateStatus(ctx, created.ID, &request.UpdateBookingStatusRequest{Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// One insert plus four updates
	assert.Len(t, notifier.published(), 5)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newBookingFixture(t)

	_, err := service.UpdateStatus(ctx, uuid.New().String(), &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetTimeSlots(t *testing.T) {
	service, _, _ := newBookingFixture(t)

	slots := service.GetTimeSlots(context.Background())
	assert.Len(t, slots, 13)
	assert.Equal(t, "08:00 AM", slots[0])
	assert.Equal(t, "08:00 PM", slots[12])
}
