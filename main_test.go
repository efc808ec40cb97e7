package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimCount(t *testing.T) {
	t.Run("No argument means no training", func(t *testing.T) {
		simCount, err := parseSimCount(nil)

		require.NoError(t, err)
		assert.Zero(t, simCount)
	})

	t.Run("Single numeric argument", func(t *testing.T) {
		simCount, err := parseSimCount([]string{"2500"})

		require.NoError(t, err)
		assert.Equal(t, 2500, simCount)
	})

	t.Run("More than one argument", func(t *testing.T) {
		_, err := parseSimCount([]string{"10", "20"})

		require.ErrorIs(t, err, ErrTooManyArgs)
	})

	for _, arg := range []string{"ten", "-1", "+5", "1.5", ""} {
		t.Run("Rejects "+arg, func(t *testing.T) {
			_, err := parseSimCount([]string{arg})

			require.ErrorIs(t, err, ErrInvalidSimCount)
		})
	}
}
