package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"", "05.01.2026", "2026-13-01", "2026-02-30", "2026-1-5", "yesterday"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestWeekday(t *testing.T) {
	// 2026-01-04 is a Sunday.
	sunday, err := ParseDate("2026-01-04")
	require.NoError(t, err)
	assert.Equal(t, 0, Weekday(sunday))

	monday, err := ParseDate("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, 1, Weekday(monday))

	saturday, err := ParseDate("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, 6, Weekday(saturday))
}

func TestParseClock(t *testing.T) {
	clock, err := ParseClock("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", clock)

	clock, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", clock)

	for _, bad := range []string{"", "24:00", "09:60", "9am", "09:00:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestToday(t *testing.T) {
	today := Today()
	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Equal(t, int(time.Now().UTC().Weekday()), Weekday(today))
}
