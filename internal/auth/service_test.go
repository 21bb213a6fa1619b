package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hugh/taskhub/internal/auth"
	"github.com/hugh/taskhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*auth.Service, *auth.JWTService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	jwtService := testutil.CreateTestJWTService()
	return auth.NewService(db, jwtService, auth.NewHasher(bcrypt.MinCost)), jwtService
}

func TestService_Register(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := testutil.TestContext(t)

	user, err := svc.Register(ctx, auth.RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.com ",
		Password: "wonderland",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "wonderland", user.PasswordHash)

	t.Run("duplicate email differs only by case", func(t *testing.T) {
		_, err := svc.Register(ctx, auth.RegisterInput{
			Name:     "Alice Two",
			Email:    "ALICE@example.com",
			Password: "wonderland",
		})
		assert.ErrorIs(t, err, auth.ErrUserExists)
	})
}

func TestService_Login(t *testing.T) {
	svc, jwtService := newAuthService(t)
	ctx := testutil.TestContext(t)

	registered, err := svc.Register(ctx, auth.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "builder"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, auth.LoginInput{Email: "BOB@example.com", Password: "builder"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, res.User.ID)

		claims, err := jwtService.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "bob@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginInput{Email: "bob@example.com", Password: "wrecker"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginInput{Email: "nobody@example.com", Password: "builder"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestService_GetUserByID(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := testutil.TestContext(t)

	user, err := svc.Register(ctx, auth.RegisterInput{Name: "Carol", Email: "carol@example.com", Password: "secret"})
	require.NoError(t, err)

	got, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", got.Name)

	_, err = svc.GetUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
