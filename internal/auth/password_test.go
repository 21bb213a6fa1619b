package auth_test

import (
	"testing"

	"github.com/hugh/taskhub/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCheck(t *testing.T) {
	h := auth.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, h.Check("secret123", hash))
	assert.False(t, h.Check("wrong", hash))
}

func TestNewHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, auth.DefaultBcryptCost, auth.NewHasher(0).Cost)
	assert.Equal(t, bcrypt.MinCost, auth.NewHasher(1).Cost)
	assert.Equal(t, bcrypt.MaxCost, auth.NewHasher(99).Cost)
	assert.Equal(t, 12, auth.NewHasher(12).Cost)
}

func TestHasher_DistinctSalts(t *testing.T) {
	h := auth.NewHasher(bcrypt.MinCost)

	a, err := h.Hash("testpassword123")
	require.NoError(t, err)
	b, err := h.Hash("testpassword123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Check("testpassword123", a))
	assert.True(t, h.Check("testpassword123", b))
}
