package wire

import (
	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public. Booking creation attaches the account when a session is
	// present so the guest can cancel later.
	r.Get("/api/bookings/slots", bookingHandler.GetTimeSlots)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
	})

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Put("/api/user/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// Admin
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", bookingHandler.GetAllBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}/status", bookingHandler.UpdateStatus)
	})
}
