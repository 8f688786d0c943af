package kernel_test

import (
	"strings"
	"testing"

	"cargo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID(t *testing.T) {
	t.Run("generates_fixed_length_uppercase_codes", func(t *testing.T) {
		code, err := kernel.GenerateTrackingID()

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Len(t, code.String(), kernel.TrackingIDLength)
		assert.Equal(t, strings.ToUpper(code.String()), code.String())
	})

	t.Run("codes_do_not_repeat_in_practice", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			code, err := kernel.GenerateTrackingID()
			require.NoError(t, err)
			assert.False(t, seen[code.String()], "duplicate code %s", code)
			seen[code.String()] = true
		}
	})
}

func TestTrackingIDFromString(t *testing.T) {
	t.Run("accepts_valid_code", func(t *testing.T) {
		code, err := kernel.TrackingIDFromString("K7Q2M9XA")

		require.NoError(t, err)
		assert.Equal(t, "K7Q2M9XA", code.String())
	})

	t.Run("normalizes_case_and_whitespace", func(t *testing.T) {
		code, err := kernel.TrackingIDFromString("  k7q2m9xa ")

		require.NoError(t, err)
		assert.Equal(t, "K7Q2M9XA", code.String())
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("ABC")

		require.Error(t, err)
	})

	t.Run("rejects_characters_outside_alphabet", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("K7Q2M9X!")

		require.Error(t, err)
	})
}

func TestTrackingID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var code kernel.TrackingID

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTrackingIDIsNotConstructed, err)
	})
}

func TestTrackingID_IsEqual(t *testing.T) {
	a, err := kernel.TrackingIDFromString("K7Q2M9XA")
	require.NoError(t, err)
	b, err := kernel.TrackingIDFromString("k7q2m9xa")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
}
