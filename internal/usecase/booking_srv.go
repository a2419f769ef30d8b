package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/dto/response"
	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking accepts an empty userID for guest bookings.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)
	GetTimeSlots(ctx context.Context) []string

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	notifier realtime.Notifier
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, notifier realtime.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date format %s, expected YYYY-MM-DD", req.Date)
	}

	if !utils.IsAvailableTimeSlot(req.Time) {
		return nil, fmt.Errorf("invalid time slot %s", req.Time)
	}

	storedTime, err := utils.ParseClockTime(req.Time)
	if err != nil {
		return nil, err
	}

	var ownerID *uuid.UUID
	if userID != "" {
		userUUID, err := utils.ParseUUID(userID)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
		}
		ownerID = &userUUID
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: ownerID,
		Date:   req.Date,
		Time:   storedTime,
		Guests: req.Guests,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Notes:  req.Notes,
		Status: entity.BookingStatusPending,
	}

	startsAt, err := booking.StartsAt()
	if err != nil {
		return nil, fmt.Errorf("invalid booking time: %w", err)
	}
	if !startsAt.After(now) {
		return nil, fmt.Errorf("cannot book a table in the past")
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
		zap.Int("guests", booking.Guests),
	)
	s.publish(ctx, realtime.EventInsert, booking.ID.String())

	resp := response.BookingToResponse(booking, now)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.bookings.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	total, err := s.bookings.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	now := time.Now()
	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, response.BookingToResponse(booking, now))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !booking.CancellableBy(userUUID, now) {
		return nil, fmt.Errorf("cannot cancel booking %s: only your own pending bookings more than %s before the reserved time", bookingID, entity.CancelWindow)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	s.log.Info("Booking cancelled by guest",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
	)
	s.publish(ctx, realtime.EventUpdate, bookingID)

	resp := response.BookingToResponse(booking, now)
	return &resp, nil
}

func (s *bookingService) GetTimeSlots(ctx context.Context) []string {
	return utils.AvailableTimeSlots
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.bookings.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	now := time.Now()
	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, response.BookingToResponse(booking, now))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking, time.Now())
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	status := entity.BookingStatus(req.Status)
	if err := s.bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	s.log.Info("Booking status changed",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)
	s.publish(ctx, realtime.EventUpdate, bookingID)

	resp := response.BookingToResponse(booking, time.Now())
	return &resp, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	bookingUUID, err := utils.ParseUUID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.bookings.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}

func (s *bookingService) publish(ctx context.Context, eventType realtime.EventType, id string) {
	event := realtime.Event{
		Table: "bookings",
		Type:  eventType,
		ID:    id,
		At:    time.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish booking change", zap.Error(err), zap.String("id", id))
	}
}
