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

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Admin endpoints
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) (*response.UserResponse, error)
}

type userService struct {
	users    repository.UserRepository
	notifier realtime.Notifier
	log      *zap.Logger
}

func NewUserService(users repository.UserRepository, notifier realtime.Notifier, log *zap.Logger) UserService {
	return &userService{
		users:    users,
		notifier: notifier,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != user.Username {
		taken, err := s.users.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken != nil {
			return nil, fmt.Errorf("username %s is already taken", req.Username)
		}
	}

	user.Username = req.Username
	user.FullName = req.FullName
	user.UpdatedAt = time.Now()

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.publish(ctx, realtime.EventUpdate, user.ID.String())

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update role validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	user.Role = role

	s.log.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
	)
	s.publish(ctx, realtime.EventUpdate, user.ID.String())

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.users.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	return user, nil
}

func (s *userService) publish(ctx context.Context, eventType realtime.EventType, id string) {
	event := realtime.Event{
		Table: "profiles",
		Type:  eventType,
		ID:    id,
		At:    time.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish profile change", zap.Error(err), zap.String("id", id))
	}
}
