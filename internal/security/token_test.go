package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	t.Run("access token", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(7, "staff@example.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "staff@example.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("refresh token carries its own type", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(7, "staff@example.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken(7, "staff@example.com")
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewTokenManager(testSecret, -time.Minute, time.Hour)
		token, err := short.GenerateAccessToken(7, "staff@example.com")
		assert.NoError(t, err)

		_, err = short.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
