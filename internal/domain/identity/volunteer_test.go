package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volhub/backend/internal/domain/shared"
)

func TestNewVolunteer(t *testing.T) {
	t.Run("creates volunteer with valid fields", func(t *testing.T) {
		v, err := NewVolunteer("Jane Doe", "jane@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", v.Name)
		assert.Equal(t, "jane@example.com", v.Email)
		assert.NotEmpty(t, v.PasswordHash)
		assert.NotEqual(t, "secret123", v.PasswordHash)
		assert.NotEqual(t, "", v.ID.String())
		assert.Equal(t, 1, v.Version)
	})

	t.Run("lowercases and trims email", func(t *testing.T) {
		v, err := NewVolunteer("Jane", "  Jane@Example.COM ", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", v.Email)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		cases := []struct {
			name     string
			fullName string
			email    string
			password string
		}{
			{"empty name", "", "jane@example.com", "secret123"},
			{"empty email", "Jane", "", "secret123"},
			{"empty password", "Jane", "jane@example.com", ""},
			{"whitespace name", "   ", "jane@example.com", "secret123"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				v, err := NewVolunteer(tc.fullName, tc.email, tc.password)

				assert.Nil(t, v)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
				assert.Equal(t, "Name, email, and password are required", domainErr.Message)
			})
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		v, err := NewVolunteer("Jane", "not-an-email", "secret123")

		assert.Nil(t, v)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}

func TestVolunteer_VerifyPassword(t *testing.T) {
	v, err := NewVolunteer("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	t.Run("accepts correct password", func(t *testing.T) {
		assert.True(t, v.VerifyPassword("secret123"))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		assert.False(t, v.VerifyPassword("wrong"))
	})

	t.Run("rejects empty password", func(t *testing.T) {
		assert.False(t, v.VerifyPassword(""))
	})
}

func TestVolunteer_SetContactDetails(t *testing.T) {
	v, err := NewVolunteer("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	v.SetContactDetails(" 555-0101 ", " Springfield ", "Weekend availability")

	assert.Equal(t, "555-0101", v.Phone)
	assert.Equal(t, "Springfield", v.Location)
	assert.Equal(t, "Weekend availability", v.Bio)
}
