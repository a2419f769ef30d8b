package wire

import (
	"net/http"

	"coffee-booking/internal/adaptor"
	"coffee-booking/internal/cart"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/usecase"
	"coffee-booking/pkg/middleware"
	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(
	repo *repository.Repository,
	carts *cart.Manager,
	notifier realtime.Notifier,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, carts, notifier, config, logger)
	handler := adaptor.NewHandler(service, notifier, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireProduct(r, handler.Product)
	wireCart(r, handler.Cart, repo, config, logger)
	wireOrder(r, handler.Order, repo, config, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireContact(r, handler.Contact, repo, logger)
	wireOverview(r, handler.Overview, repo, logger)
	wireLive(r, handler.Live, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
