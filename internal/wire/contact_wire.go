package wire

import (
	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Post("/api/contact", contactHandler.SubmitMessage)

	// Admin
	r.Route("/api/admin/contacts", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", contactHandler.GetAllContacts)
		r.Get("/{id}", contactHandler.GetContactByID)
		r.Put("/{id}/status", contactHandler.UpdateStatus)
	})
}
