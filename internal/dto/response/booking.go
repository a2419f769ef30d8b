package response

import (
	"time"

	"coffee-booking/internal/data/entity"
	"coffee-booking/pkg/utils"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      *string              `json:"user_id,omitempty"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	DisplayTime string               `json:"display_time"`
	Guests      int                  `json:"guests"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Notes       *string              `json:"notes,omitempty"`
	Status      entity.BookingStatus `json:"status"`
	Cancellable bool                 `json:"cancellable"`
	CreatedAt   time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, now time.Time) BookingResponse {
	resp := BookingResponse{
		ID:          booking.ID.String(),
		Date:        booking.Date,
		Time:        booking.Time,
		DisplayTime: utils.FormatClockTime(booking.Time),
		Guests:      booking.Guests,
		Name:        booking.Name,
		Email:       booking.Email,
		Phone:       booking.Phone,
		Notes:       booking.Notes,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}

	if booking.UserID != nil {
		id := booking.UserID.String()
		resp.UserID = &id
		resp.Cancellable = booking.CancellableBy(*booking.UserID, now)
	}

	return resp
}
