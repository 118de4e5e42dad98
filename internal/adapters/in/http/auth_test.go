package http

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T, role user.Role) *user.User {
	t.Helper()

	u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", "$2a$10$hash", role)
	require.NoError(t, err)
	return u
}

func TestTokenService_IssueAndParse(t *testing.T) {
	t.Run("should round trip identity through a token", func(t *testing.T) {
		tokens := NewTokenService("test-secret", time.Hour)
		u := testUser(t, user.RoleRider)

		token, err := tokens.Issue(u)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		identity, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.True(t, identity.UserID.IsEqual(u.ID()))
		assert.Equal(t, user.RoleRider, identity.Role)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		issuer := NewTokenService("secret-one", time.Hour)
		verifier := NewTokenService("secret-two", time.Hour)
		token, err := issuer.Issue(testUser(t, user.RoleBuyer))
		require.NoError(t, err)

		_, err = verifier.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		tokens := NewTokenService("test-secret", -time.Minute)
		token, err := tokens.Issue(testUser(t, user.RoleBuyer))
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject garbage input", func(t *testing.T) {
		tokens := NewTokenService("test-secret", time.Hour)

		_, err := tokens.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token with an unknown role claim", func(t *testing.T) {
		secret := "test-secret"
		claims := jwt.MapClaims{
			"sub":  kernel.NewUUID().String(),
			"role": "superuser",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = NewTokenService(secret, time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token with a malformed subject", func(t *testing.T) {
		secret := "test-secret"
		claims := jwt.MapClaims{
			"sub":  "not-a-uuid",
			"role": user.RoleRider.String(),
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = NewTokenService(secret, time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
