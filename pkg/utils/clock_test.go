package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	t.Run("afternoon time", func(t *testing.T) {
		got, err := ParseClockTime("02:30 PM")
		require.NoError(t, err)
		assert.Equal(t, "14:30:00", got)
	})

	t.Run("midnight", func(t *testing.T) {
		got, err := ParseClockTime("12:00 AM")
		require.NoError(t, err)
		assert.Equal(t, "00:00:00", got)
	})

	t.Run("noon", func(t *testing.T) {
		got, err := ParseClockTime("12:00 PM")
		require.NoError(t, err)
		assert.Equal(t, "12:00:00", got)
	})

	t.Run("morning time", func(t *testing.T) {
		got, err := ParseClockTime("08:00 AM")
		require.NoError(t, err)
		assert.Equal(t, "08:00:00", got)
	})

	t.Run("single digit hour", func(t *testing.T) {
		got, err := ParseClockTime("9:15 AM")
		require.NoError(t, err)
		assert.Equal(t, "09:15:00", got)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		got, err := ParseClockTime(" 03:00 PM ")
		require.NoError(t, err)
		assert.Equal(t, "15:00:00", got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "14:30", "02:30PM", "13:00 PM", "00:00 AM", "10:75 AM", "morning"} {
			_, err := ParseClockTime(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "2:30 PM", FormatClockTime("14:30:00"))
	assert.Equal(t, "12:00 AM", FormatClockTime("00:00:00"))
	assert.Equal(t, "12:00 PM", FormatClockTime("12:00:00"))
	assert.Equal(t, "8:00 AM", FormatClockTime("08:00:00"))

	// Unparseable values pass through untouched
	assert.Equal(t, "whenever", FormatClockTime("whenever"))
}

func TestIsAvailableTimeSlot(t *testing.T) {
	assert.Len(t, AvailableTimeSlots, 13)
	assert.Equal(t, "08:00 AM", AvailableTimeSlots[0])
	assert.Equal(t, "08:00 PM", AvailableTimeSlots[len(AvailableTimeSlots)-1])

	for _, slot := range AvailableTimeSlots {
		assert.True(t, IsAvailableTimeSlot(slot), "slot %q", slot)
	}

	assert.False(t, IsAvailableTimeSlot("08:30 AM"))
	assert.False(t, IsAvailableTimeSlot("09:00 PM"))
	assert.False(t, IsAvailableTimeSlot(""))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, slot := range AvailableTimeSlots {
		stored, err := ParseClockTime(slot)
		require.NoError(t, err)
		assert.Equal(t, displayForm(slot), FormatClockTime(stored))
	}
}

// displayForm strips the leading zero ParseClockTime accepts but
// FormatClockTime never emits.
func displayForm(slot string) string {
	if slot[0] == '0' {
		return slot[1:]
	}
	return slot
}
