package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday(" wednesday ")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)
}

func TestWeekdayOf(t *testing.T) {
	// 2026-10-19 - понедельник
	monday := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestWeekday_Previous(t *testing.T) {
	prev, ok := Tuesday.Previous()
	assert.True(t, ok)
	assert.Equal(t, Monday, prev)

	_, ok = Monday.Previous()
	assert.False(t, ok)

	_, ok = Weekday("Holiday").Previous()
	assert.False(t, ok)
}

func TestActiveFlag(t *testing.T) {
	f, err := ParseActiveFlag("y")
	require.NoError(t, err)
	assert.True(t, f.Bool())

	f, err = ParseActiveFlag("N")
	require.NoError(t, err)
	assert.False(t, f.Bool())

	_, err = ParseActiveFlag("yes")
	assert.Error(t, err)

	assert.Equal(t, ActiveYes, FlagFromBool(true))
	assert.Equal(t, ActiveNo, FlagFromBool(false))
}
