package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiefroqa/baruk-app/internal/core/domain/services"
)

func TestCredentialGenerator_TrackingCode(t *testing.T) {
	generator := services.NewCredentialGenerator()

	t.Run("should produce prefixed codes of fixed length", func(t *testing.T) {
		code, err := generator.TrackingCode()

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, services.TrackingCodePrefix))
		assert.Len(t, code, len(services.TrackingCodePrefix)+8)
	})

	t.Run("should avoid ambiguous characters", func(t *testing.T) {
		for range 50 {
			code, err := generator.TrackingCode()
			require.NoError(t, err)

			suffix := strings.TrimPrefix(code, services.TrackingCodePrefix)
			assert.NotContains(t, suffix, "0")
			assert.NotContains(t, suffix, "O")
			assert.NotContains(t, suffix, "1")
			assert.NotContains(t, suffix, "I")
		}
	})

	t.Run("should produce distinct codes", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			code, err := generator.TrackingCode()
			require.NoError(t, err)
			assert.False(t, seen[code], "duplicate tracking code %s", code)
			seen[code] = true
		}
	})
}

func TestCredentialGenerator_VerificationCode(t *testing.T) {
	generator := services.NewCredentialGenerator()

	t.Run("should produce four numeric digits", func(t *testing.T) {
		for range 50 {
			code, err := generator.VerificationCode()

			require.NoError(t, err)
			require.Len(t, code, 4)
			for _, c := range code {
				assert.True(t, c >= '0' && c <= '9', "non-digit in code %s", code)
			}
		}
	})

	t.Run("should preserve leading zeros", func(t *testing.T) {
		// Codes are strings, not integers; "0042" must stay four characters.
		for range 200 {
			code, err := generator.VerificationCode()
			require.NoError(t, err)
			require.Len(t, code, 4)
		}
	})
}
