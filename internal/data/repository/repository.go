package repository

import (
	"coffee-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	PasswordReset PasswordResetRepository
	Product       ProductRepository
	Order         OrderRepository
	OrderItem     OrderItemRepository
	Booking       BookingRepository
	Contact       ContactRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		PasswordReset: NewPasswordResetRepository(db, log),
		Product:       NewProductRepository(db, log),
		Order:         NewOrderRepository(db, log),
		OrderItem:     NewOrderItemRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Contact:       NewContactRepository(db, log),
	}
}
