package wire

import (
	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOverview(
	r chi.Router,
	overviewHandler *adaptor.OverviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/api/admin/overview", overviewHandler.GetOverview)
	})
}
