//go:build unit

package user_test

import (
	"testing"

	"takeout-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := user.NewEmail("  Taro@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "taro@example.com", e.String())
	})

	for _, s := range []string{"", "no-at-sign", "a@b", "a b@example.com", "@example.com"} {
		t.Run("rejects "+s, func(t *testing.T) {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail)
		})
	}
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		c, err := user.NewCredentials("taro@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "taro@example.com", c.Email().String())
		assert.Equal(t, "s3cretpass", c.Password().Value())
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := user.NewCredentials("taro@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("taro@example.com")
	require.NoError(t, err)

	t.Run("registration yields active customer", func(t *testing.T) {
		u, err := user.NewUser(email, "hash", "Taro", "090-1234-5678")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsAdmin())
	})

	t.Run("empty display name rejected", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", "   ", "")
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.True(t, role.IsValid())

	_, err = user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
