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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (*response.UserResponse, error)

	SendPasswordReset(ctx context.Context, req *request.SendPasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, req *request.ConfirmPasswordResetRequest) error
}

type authService struct {
	repo     *repository.Repository
	notifier realtime.Notifier
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, notifier realtime.Notifier, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		notifier: notifier,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Username and email must both be free
	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s is already taken", req.Username)
	}

	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)
	s.publish(ctx, realtime.EventInsert, user.ID.String())

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPassword(req.Password, user.PasswordHash) {
		// One message for both cases so usernames cannot be probed
		return nil, fmt.Errorf("invalid username or password")
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	s.publish(ctx, realtime.EventUpdate, user.ID.String())

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		return fmt.Errorf("find session: %w", err)
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	if session != nil {
		s.publish(ctx, realtime.EventUpdate, session.UserID.String())
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) SendPasswordReset(ctx context.Context, req *request.SendPasswordResetRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Password reset validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		// Succeed silently so addresses cannot be probed
		s.log.Info("Password reset requested for unknown email")
		return nil
	}

	reset := &entity.PasswordReset{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	if err := s.repo.PasswordReset.Create(ctx, reset); err != nil {
		return fmt.Errorf("create password reset: %w", err)
	}

	// Token delivery happens out of band; the mailer tails this log in dev.
	s.log.Info("Password reset token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("token", reset.Token.String()),
	)

	return nil
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, req *request.ConfirmPasswordResetRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Password reset confirm validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reset, err := s.repo.PasswordReset.FindValidToken(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("find reset token: %w", err)
	}
	if reset == nil {
		return fmt.Errorf("reset token not found or expired")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, reset.UserID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.repo.PasswordReset.MarkUsed(ctx, req.Token); err != nil {
		return fmt.Errorf("mark reset token used: %w", err)
	}

	// Old sessions die with the old password
	if err := s.repo.Session.RevokeAllUserSessions(ctx, reset.UserID); err != nil {
		s.log.Error("Failed to revoke sessions after password reset",
			zap.Error(err), zap.String("user_id", reset.UserID.String()))
	}

	s.log.Info("Password reset completed", zap.String("user_id", reset.UserID.String()))
	return nil
}

// publish mirrors sign-in and sign-out activity onto the profiles stream.
func (s *authService) publish(ctx context.Context, eventType realtime.EventType, id string) {
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

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}
