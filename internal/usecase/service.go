package usecase

import (
	"coffee-booking/internal/cart"
	"coffee-booking/internal/data/repository"
	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Product  ProductService
	Cart     CartService
	Order    OrderService
	Booking  BookingService
	Contact  ContactService
	Overview OverviewService
}

func NewService(
	repo *repository.Repository,
	carts *cart.Manager,
	notifier realtime.Notifier,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, notifier, config, log),
		User:     NewUserService(repo.User, notifier, log),
		Product:  NewProductService(repo.Product, log),
		Cart:     NewCartService(carts, log),
		Order:    NewOrderService(repo, carts, notifier, log),
		Booking:  NewBookingService(repo.Booking, notifier, log),
		Contact:  NewContactService(repo.Contact, notifier, log),
		Overview: NewOverviewService(repo, log),
	}
}
