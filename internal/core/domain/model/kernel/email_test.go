package kernel_test

import (
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should accept and lower-case a valid address", func(t *testing.T) {
		e, err := kernel.NewEmail("Maria.Silva@Example.COM")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "maria.silva@example.com", e.Value())
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, value := range []string{"", "plain", "no@tld", "two@@example.com", "spaces in@example.com"} {
			_, err := kernel.NewEmail(value)
			require.Error(t, err, "value %q", value)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var e kernel.Email

		err := e.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrEmailIsNotConstructed, err)
	})
}

func TestEmail_IsEqual(t *testing.T) {
	a, _ := kernel.NewEmail("user@example.com")
	b, _ := kernel.NewEmail("USER@example.com")

	assert.True(t, a.IsEqual(b))
}
