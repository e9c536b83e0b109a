package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewgram/models"
)

func TestLookupBoatClass(t *testing.T) {
	eight, err := models.LookupBoatClass("8+")
	require.NoError(t, err)
	assert.Equal(t, 8, eight.RowerSeats)
	assert.True(t, eight.Coxed)
	assert.Equal(t, 9, eight.TotalSeats())

	single, err := models.LookupBoatClass("1x")
	require.NoError(t, err)
	assert.Equal(t, 1, single.RowerSeats)
	assert.False(t, single.Coxed)
	assert.Equal(t, 1, single.TotalSeats())
}

func TestLookupBoatClass_Unknown(t *testing.T) {
	_, err := models.LookupBoatClass("3x")
	assert.ErrorIs(t, err, models.ErrUnknownBoatClass)
}

func TestBoatClassCodes_SeatInvariant(t *testing.T) {
	codes := models.BoatClassCodes()
	require.NotEmpty(t, codes)
	for _, code := range codes {
		class, err := models.LookupBoatClass(code)
		require.NoError(t, err)
		want := class.RowerSeats
		if class.Coxed {
			want++
		}
		assert.Equal(t, want, class.TotalSeats(), "class %s", code)
	}
}
