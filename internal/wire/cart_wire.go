package wire

import (
	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/middleware"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Carts work for signed-in and anonymous visitors alike: the key
	// comes from the session when present, else from a minted cookie.
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))
		r.Use(middleware.CartKey(config.Cart.CookieName))

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Put("/toggle", cartHandler.ToggleCart)

		r.Post("/items", cartHandler.AddItem)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
		r.Put("/items/{id}/increase", cartHandler.IncreaseQuantity)
		r.Put("/items/{id}/decrease", cartHandler.DecreaseQuantity)
	})
}
