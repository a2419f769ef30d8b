package wire

import (
	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLive(
	r chi.Router,
	liveHandler *adaptor.LiveHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Admin change streams for the back-office tables
	r.Route("/api/admin/live", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/{table}", liveHandler.Stream)
	})
}
