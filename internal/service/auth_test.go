package service

import (
	"context"
	"testing"
	"time"

	"fleetrent-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo) {
	t.Helper()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 15*time.Minute, 7*24*time.Hour)
	users := newFakeUserRepo()
	return NewAuthService(users, tokens), users
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "admin@fleetrent.cz", "Admin", "s3cret-pass")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	access, refresh, err := svc.Login(ctx, "admin@fleetrent.cz", "s3cret-pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "admin@fleetrent.cz", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@fleetrent.cz", "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Refresh", func(t *testing.T) {
		newAccess, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("RefreshWithAccessToken", func(t *testing.T) {
		_, _, err := svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Session", func(t *testing.T) {
		got, err := svc.Session(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "admin@fleetrent.cz", got.Email)
	})
}
