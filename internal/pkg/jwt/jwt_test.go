//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(clk clock.Clock) *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour, clk)
}

func TestTokenLifecycle(t *testing.T) {
	userID := uuid.New()

	t.Run("issued access token validates with claims intact", func(t *testing.T) {
		svc := newTestService(clock.NewRealClock())

		token, err := svc.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, user.RoleClient.String(), claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("token issued before the access window is expired", func(t *testing.T) {
		mock := clock.NewMockClock(time.Now().Add(-16 * time.Minute))
		svc := newTestService(mock)

		token, err := svc.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("refresh token outlives the access window", func(t *testing.T) {
		mock := clock.NewMockClock(time.Now().Add(-16 * time.Minute))
		svc := newTestService(mock)

		token, err := svc.GenerateRefreshToken(userID, user.RoleClient)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", 15*time.Minute, 7*24*time.Hour, clock.NewRealClock())
		svc := newTestService(clock.NewRealClock())

		token, err := other.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
