package usecase

import (
	"context"
	"testing"

	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/dto/request"
	"coffee-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	service  AuthService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	resets   *fakeResetRepo
	notifier *recordingNotifier
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	resets := newFakeResetRepo()
	notifier := &recordingNotifier{}

	repo := &repository.Repository{
		User:          users,
		Session:       sessions,
		PasswordReset: resets,
	}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}

	return &authFixture{
		service:  NewAuthService(repo, notifier, config, zap.NewNop()),
		users:    users,
		sessions: sessions,
		resets:   resets,
		notifier: notifier,
	}
}

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "dana",
		Email:    "dana@example.com",
		Password: "espresso-99",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	auth, err := f.service.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "dana", auth.Username)
	assert.Equal(t, entity.RoleUser, auth.Role)
	assert.NotEmpty(t, auth.Token)

	// The issued session is immediately valid
	session, err := f.sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	require.NotNil(t, session)

	// Stored hash is not the plaintext password
	userUUID, _ := uuid.Parse(auth.UserID)
	user, _ := f.users.FindByID(ctx, userUUID)
	assert.NotEqual(t, "espresso-99", user.PasswordHash)

	login, err := f.service.Login(ctx, &request.LoginRequest{Username: "dana", Password: "espresso-99"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.NotEqual(t, auth.Token, login.Token)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	_, err := f.service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = f.service.Register(ctx, registerRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")

	req := registerRequest()
	req.Username = "dana2"
	_, err = f.service.Register(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	_, err := f.service.Register(ctx, registerRequest())
	require.NoError(t, err)

	// Unknown user and wrong password share one message
	_, err = f.service.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "espresso-99"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username or password")

	_, err = f.service.Login(ctx, &request.LoginRequest{Username: "dana", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username or password")
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	auth, err := f.service.Register(ctx, registerRequest())
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, auth.Token))

	session, err := f.sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	auth, err := f.service.Register(ctx, registerRequest())
	require.NoError(t, err)

	require.NoError(t, f.service.SendPasswordReset(ctx, &request.SendPasswordResetRequest{Email: "dana@example.com"}))
	require.Len(t, f.resets.resets, 1)

	var token string
	for tok := range f.resets.resets {
		token = tok
	}

	require.NoError(t, f.service.ConfirmPasswordReset(ctx, &request.ConfirmPasswordResetRequest{
		Token:    token,
		Password: "latte-100",
	}))

	// Token is single use
	err = f.service.ConfirmPasswordReset(ctx, &request.ConfirmPasswordResetRequest{
		Token:    token,
		Password: "mocha-101",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found or expired")

	// Old sessions are gone, old password no longer works
	session, err := f.sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, err = f.service.Login(ctx, &request.LoginRequest{Username: "dana", Password: "espresso-99"})
	require.Error(t, err)

	_, err = f.service.Login(ctx, &request.LoginRequest{Username: "dana", Password: "latte-100"})
	assert.NoError(t, err)
}

func TestPasswordResetForUnknownEmailSucceedsSilently(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	require.NoError(t, f.service.SendPasswordReset(ctx, &request.SendPasswordResetRequest{Email: "ghost@example.com"}))
	assert.Empty(t, f.resets.resets)
}
