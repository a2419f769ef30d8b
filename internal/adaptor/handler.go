package adaptor

import (
	"coffee-booking/internal/usecase"
	"coffee-booking/pkg/realtime"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Order    *OrderHandler
	Booking  *BookingHandler
	Contact  *ContactHandler
	Overview *OverviewHandler
	Live     *LiveHandler
}

func NewHandler(service *usecase.Service, notifier realtime.Notifier, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Product:  NewProductHandler(service.Product, log),
		Cart:     NewCartHandler(service.Cart, log),
		Order:    NewOrderHandler(service.Order, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Contact:  NewContactHandler(service.Contact, log),
		Overview: NewOverviewHandler(service.Overview, log),
		Live:     NewLiveHandler(notifier, log),
	}
}
