package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	t.Run("Valid times", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"09:00": 540,
			"09:30": 570,
			"23:59": 1439,
		}
		for input, want := range cases {
			got, err := ParseClockTime(input)
			assert.NoError(t, err)
			assert.Equal(t, want, got, "parsing %s", input)
		}
	})

	t.Run("Invalid times", func(t *testing.T) {
		for _, input := range []string{"", "9:00", "09:60", "24:00", "0900", "ab:cd", "09:0", "09-00"} {
			_, err := ParseClockTime(input)
			assert.Error(t, err, "expected error for %q", input)
		}
	})

	t.Run("Round trips through FormatClockTime", func(t *testing.T) {
		for minutes := 0; minutes < MinutesPerDay; minutes++ {
			parsed, err := ParseClockTime(FormatClockTime(minutes))
			assert.NoError(t, err)
			assert.Equal(t, minutes, parsed)
		}
	})
}

func TestTimeRangesOverlap(t *testing.T) {
	t.Run("Touching endpoints do not overlap", func(t *testing.T) {
		assert.False(t, TimeRangesOverlap(540, 600, 600, 660))
		assert.False(t, TimeRangesOverlap(600, 660, 540, 600))
	})

	t.Run("Partial overlap", func(t *testing.T) {
		assert.True(t, TimeRangesOverlap(540, 630, 600, 660))
	})

	t.Run("Containment", func(t *testing.T) {
		assert.True(t, TimeRangesOverlap(540, 660, 570, 600))
	})

	t.Run("Symmetry", func(t *testing.T) {
		assert.Equal(t, TimeRangesOverlap(540, 630, 600, 660), TimeRangesOverlap(600, 660, 540, 630))
	})
}

func TestTimeWithinRange(t *testing.T) {
	assert.True(t, TimeWithinRange(540, 540, 600), "start boundary is inside")
	assert.True(t, TimeWithinRange(599, 540, 600))
	assert.False(t, TimeWithinRange(600, 540, 600), "end boundary is outside")
	assert.False(t, TimeWithinRange(539, 540, 600))
}

func TestWeekdayOf(t *testing.T) {
	cases := map[string]string{
		"2025-01-06": "MONDAY",
		"2025-01-07": "TUESDAY",
		"2025-01-12": "SUNDAY",
	}
	for date, want := range cases {
		got, err := WeekdayOf(date)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := WeekdayOf("06-01-2025")
	assert.Error(t, err)
}

func TestNextDate(t *testing.T) {
	assert.Equal(t, "2025-01-07", NextDate("2025-01-06"))
	assert.Equal(t, "2025-02-01", NextDate("2025-01-31"))
	assert.Equal(t, "2024-02-29", NextDate("2024-02-28"), "leap year")
	assert.Equal(t, "2026-01-01", NextDate("2025-12-31"))
}

func TestFormatCounterID(t *testing.T) {
	assert.Equal(t, "SL00003", FormatCounterID("SL", 3))
	assert.Equal(t, "UN00120", FormatCounterID("UN", 120))
	assert.Equal(t, "AS123456", FormatCounterID("AS", 123456), "wide values keep all digits")
}
