package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hugh/taskhub/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 3*time.Hour)

	userID := uuid.New()
	email := "alice@example.com"

	t.Run("generates valid token", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, email)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, email, claims.Email)
	})

	t.Run("token contains issuer and subject", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, email)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "taskhub", claims.Issuer)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("expiry follows configured lifetime", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, email)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(3*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})
}

func TestJWTService_ValidateToken(t *testing.T) {
	userID := uuid.New()
	email := "alice@example.com"

	t.Run("rejects expired token", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", 1*time.Millisecond)

		token, err := jwtService.GenerateToken(userID, email)
		require.NoError(t, err)

		time.Sleep(1100 * time.Millisecond)

		_, err = jwtService.ValidateToken(token)
		assert.Equal(t, auth.ErrExpiredToken, err)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", time.Hour)

		token, err := jwtService.GenerateToken(userID, email)
		require.NoError(t, err)

		_, err = jwtService.ValidateToken(token + "tampered")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		jwtService1 := auth.NewJWTService("secret-1", time.Hour)
		jwtService2 := auth.NewJWTService("secret-2", time.Hour)

		token, err := jwtService1.GenerateToken(userID, email)
		require.NoError(t, err)

		_, err = jwtService2.ValidateToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects foreign issuer", func(t *testing.T) {
		claims := auth.Claims{
			UserID: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = auth.NewJWTService("test-secret", time.Hour).ValidateToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects malformed and empty tokens", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", time.Hour)

		_, err := jwtService.ValidateToken("not-a-valid-jwt")
		assert.Equal(t, auth.ErrInvalidToken, err)

		_, err = jwtService.ValidateToken("")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})
}
