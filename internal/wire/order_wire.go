package wire

import (
	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/middleware"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Protected. Checkout also needs the cart key to find the cart.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.CartKey(config.Cart.CookieName))

		r.Post("/api/checkout", orderHandler.Checkout)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/user/orders", orderHandler.GetUserOrders)
		r.Get("/api/user/orders/{id}", orderHandler.GetOrderByID)
	})

	// Admin
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", orderHandler.GetAllOrders)
		r.Get("/{id}", orderHandler.GetOrderDetail)
		r.Put("/{id}/status", orderHandler.UpdateStatus)
	})
}
